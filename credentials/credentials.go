package credentials

import (
	"crypto/subtle"
	"strings"

	"github.com/nuggetscustoms/site/roles"
	"golang.org/x/crypto/bcrypt"
)

// Checker validates a submitted secret against the two configured role secrets.
// A configured secret may be plain text or a bcrypt hash.
type Checker struct {
	clientSecret string
	adminSecret  string
}

func NewChecker(clientSecret, adminSecret string) *Checker {
	return &Checker{
		clientSecret: clientSecret,
		adminSecret:  adminSecret,
	}
}

// Check returns the role the secret grants. Admin is tried first.
func (c *Checker) Check(secret string) roles.Role {
	if secret == "" {
		return roles.None
	}
	if matches(secret, c.adminSecret) {
		return roles.Admin
	}
	if matches(secret, c.clientSecret) {
		return roles.Client
	}
	return roles.None
}

func matches(submitted, configured string) bool {
	if configured == "" {
		return false
	}
	if IsHash(configured) {
		return CheckSecretHash(submitted, configured)
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(configured)) == 1
}

// IsHash reports whether value looks like a bcrypt hash.
func IsHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") ||
		strings.HasPrefix(value, "$2b$") ||
		strings.HasPrefix(value, "$2y$")
}

func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckSecretHash(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}
