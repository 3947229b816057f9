package auth

import (
	"context"
	"errors"
	"time"
)

// Service implements the registration and login flows on top of a
// UserRepository. It owns the hashing cost and token parameters so
// handlers never touch crypto primitives directly.
type Service struct {
	users  UserRepository
	secret string
	ttl    time.Duration
	cost   int
}

// NewService creates an auth service.
// A non-positive cost falls back to DefaultBcryptCost.
func NewService(users UserRepository, secret string, ttl time.Duration, cost int) *Service {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return &Service{
		users:  users,
		secret: secret,
		ttl:    ttl,
		cost:   cost,
	}
}

// Register creates a new account with a hashed password.
// The plaintext password is never stored or logged.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	if len(username) > MaxCredentialLength ||
		len(email) > MaxCredentialLength ||
		len(password) > MaxCredentialLength {
		return nil, ErrCredentialTooLong
	}

	hash, err := HashPassword(password, s.cost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a signed access token.
// The authenticated user is returned alongside the token so callers can
// record who logged in without re-parsing the token.
//
// Unknown email and wrong password both return ErrInvalidCredentials so
// the response cannot be used to probe which addresses have accounts.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := IssueToken(user.ID, s.secret, s.ttl)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// VerifyToken parses and validates an access token string.
// It is a thin wrapper so callers outside the package never handle
// the signing secret.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	return ParseToken(tokenString, s.secret)
}
