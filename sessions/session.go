package sessions

import (
	"time"

	"github.com/nuggetscustoms/site/roles"
)

// Session is the server-held proof of a successful portal login.
type Session struct {
	Role      roles.Role
	CreatedAt time.Time
}

// Expired reports whether the session is older than maxAge at now.
// A non-positive maxAge never expires.
func (s Session) Expired(now time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return now.Sub(s.CreatedAt) > maxAge
}
