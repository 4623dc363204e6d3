package auth

import (
	"fmt"
	"time"

	"github.com/nuggetscustoms/site/credentials"
	"github.com/nuggetscustoms/site/internal/errors"
	"github.com/nuggetscustoms/site/roles"
	"github.com/nuggetscustoms/site/sessions"
	"github.com/rs/zerolog/log"
)

// Config is the part of the application config the authorization service reads
type Config interface {
	GetClientSecret() string
	GetAdminSecret() string
	GetMaxSessionAge() time.Duration
}

// Board pages each role lands on after login
const (
	ClientDestination = "/client-board"
	AdminDestination  = "/admin-board"
)

// LoginResult is returned by a successful Login
type LoginResult struct {
	Token       string
	Role        roles.Role
	Destination string
}

// DestinationFor is the board a role lands on after login, or "" for None.
func DestinationFor(role roles.Role) string {
	switch role {
	case roles.Admin:
		return AdminDestination
	case roles.Client:
		return ClientDestination
	default:
		return ""
	}
}

// AuthorizationService turns portal secrets into sessions and sessions into roles.
// Every authorization decision goes through ResolveRole.
type AuthorizationService struct {
	checker       *credentials.Checker
	sessions      sessions.Repo
	maxSessionAge time.Duration
	now           func() time.Time
}

// NewAuthorizationService checks secrets from config and keeps sessions in sessionRepo.
func NewAuthorizationService(sessionRepo sessions.Repo, config Config) (*AuthorizationService, error) {
	if sessionRepo == nil {
		return nil, MissingSessionRepoErr
	}
	if config.GetClientSecret() == "" && config.GetAdminSecret() == "" {
		log.Warn().Msg("No portal secrets configured, every login will be rejected")
	}

	return &AuthorizationService{
		checker:       credentials.NewChecker(config.GetClientSecret(), config.GetAdminSecret()),
		sessions:      sessionRepo,
		maxSessionAge: config.GetMaxSessionAge(),
		now:           time.Now,
	}, nil
}

// WithClock replaces the time source used for expiry checks.
func (as *AuthorizationService) WithClock(now func() time.Time) *AuthorizationService {
	as.now = now
	return as
}

// Login checks the secret and opens a session for the role it grants.
// A mismatch changes no state.
func (as *AuthorizationService) Login(secret string) (LoginResult, error) {
	role := as.checker.Check(secret)
	if role == roles.None {
		return LoginResult{}, errors.Wrapf(errors.ErrUnauthorized, "[AuthorizationService Login] %s", InvalidSecretErr)
	}

	token, err := as.sessions.Create(role)
	if err != nil {
		return LoginResult{}, fmt.Errorf("[AuthorizationService Login] create session: %w", err)
	}

	log.Info().Str("role", role.String()).Msg("Portal login")
	return LoginResult{Token: token, Role: role, Destination: DestinationFor(role)}, nil
}

// Logout revokes the session behind token. Unknown tokens are ignored.
func (as *AuthorizationService) Logout(token string) {
	if token == "" {
		return
	}
	as.sessions.Revoke(token)
}

// Session returns the live session for token, revoking it when it has outlived the max age.
func (as *AuthorizationService) Session(token string) (sessions.Session, error) {
	session, ok := as.sessions.Lookup(token)
	if !ok {
		return sessions.Session{}, errors.ErrSessionNotFound
	}
	if session.Expired(as.now(), as.maxSessionAge) {
		as.sessions.Revoke(token)
		return sessions.Session{}, errors.ErrSessionExpired
	}
	return session, nil
}

// ResolveRole maps a session token to none, client or admin.
func (as *AuthorizationService) ResolveRole(token string) roles.Role {
	session, err := as.Session(token)
	if err != nil {
		return roles.None
	}
	return session.Role
}

// HasClientAccess is true for client and admin sessions
func (as *AuthorizationService) HasClientAccess(token string) bool {
	return as.ResolveRole(token).CanRead()
}

// IsAdmin is true for admin sessions only
func (as *AuthorizationService) IsAdmin(token string) bool {
	return as.ResolveRole(token).CanWrite()
}

// SweepExpired purges sessions older than the max age
func (as *AuthorizationService) SweepExpired() int {
	if as.maxSessionAge <= 0 {
		return 0
	}
	return as.sessions.DeleteExpired(as.now().Add(-as.maxSessionAge))
}

// MaxSessionAge is the lifetime granted to new sessions
func (as *AuthorizationService) MaxSessionAge() time.Duration {
	return as.maxSessionAge
}
