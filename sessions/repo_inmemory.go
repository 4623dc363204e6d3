package sessions

import (
	"sync"
	"time"

	"github.com/nuggetscustoms/site/roles"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo keeps sessions in process memory; they are lost on restart.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session // token -> Session
	now      func() time.Time
}

// NewInMemoryRepo creates an empty in-memory session repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// WithClock replaces the time source used for CreatedAt.
func (r *InMemoryRepo) WithClock(now func() time.Time) *InMemoryRepo {
	r.now = now
	return r
}

// Create records {role, now} under a fresh random token
func (r *InMemoryRepo) Create(role roles.Role) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = Session{
		Role:      role,
		CreatedAt: r.now(),
	}
	return token, nil
}

// Lookup retrieves a session by token
func (r *InMemoryRepo) Lookup(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	return session, ok
}

// Revoke removes a session
func (r *InMemoryRepo) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
}

// DeleteExpired removes every session created before the cutoff
func (r *InMemoryRepo) DeleteExpired(before time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for token, session := range r.sessions {
		if session.CreatedAt.Before(before) {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions
func (r *InMemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
