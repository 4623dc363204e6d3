package sessions

import (
	"time"

	"github.com/nuggetscustoms/site/roles"
)

// Repo owns the mapping from session token to Session.
type Repo interface {
	// Create stores a new session for role and returns its token
	Create(role roles.Role) (string, error)

	// Lookup returns the session for token. Expiry is not enforced here.
	Lookup(token string) (Session, bool)

	// Revoke removes the session; revoking an unknown token is a no-op
	Revoke(token string)

	// DeleteExpired removes sessions created before the cutoff and returns how many went
	DeleteExpired(before time.Time) int
}
