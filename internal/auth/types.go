package auth

import (
	"errors"
	"time"
)

// MaxCredentialLength caps username, email, and password input length.
// Prevents oversized bcrypt inputs and pathological storage rows. The API
// edge validates against the same bound.
const MaxCredentialLength = 256

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialised
	CreatedAt    time.Time `json:"created_at"`
}

// Sentinel errors for auth operations.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must not be able to distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned by repository lookups that miss.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateCredential is returned when registering an email that
	// already has an account.
	ErrDuplicateCredential = errors.New("email already registered")

	// ErrTokenInvalid is returned for malformed, tampered, or expired tokens.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrCredentialTooLong is returned when a registration field exceeds
	// MaxCredentialLength. Distinct from ErrInvalidCredentials: this is a
	// rejected input, not a failed authentication.
	ErrCredentialTooLong = errors.New("credential exceeds maximum length")
)
