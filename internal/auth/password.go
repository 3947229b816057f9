package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the default work factor for password hashing.
// Cost 10 is roughly 100ms per hash on commodity hardware, which keeps
// login latency acceptable while making offline brute-force expensive.
const DefaultBcryptCost = 10

// HashPassword hashes a plaintext password using bcrypt.
// The cost must be within bcrypt's supported range (4-31); values
// outside it fall back to DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a bcrypt hash.
// Returns true only on an exact match. A malformed or truncated stored
// hash verifies as false rather than surfacing an error: from the
// caller's perspective it is just a failed login.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
