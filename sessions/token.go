package sessions

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenSize is 32 bytes = 256 bits of entropy
const tokenSize = 32

// GenerateToken returns a cryptographically random, base64url encoded session token.
func GenerateToken() (string, error) {
	b := make([]byte, tokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("sessions: failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
