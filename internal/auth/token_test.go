package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueToken_RoundTrip(t *testing.T) {
	token, err := IssueToken("usr-12345678", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	if claims.Subject != "usr-12345678" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "usr-12345678")
	}
	if claims.ID == "" {
		t.Error("token should carry a unique jti")
	}
}

func TestIssueToken_ExpiryClaim(t *testing.T) {
	before := time.Now()
	token, err := IssueToken("usr-12345678", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	after := time.Now()

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	// Expiry should land one hour from issuance, give or take the test's runtime.
	min := before.Add(time.Hour).Add(-time.Second)
	max := after.Add(time.Hour).Add(time.Second)
	exp := claims.ExpiresAt.Time
	if exp.Before(min) || exp.After(max) {
		t.Errorf("ExpiresAt = %v, want within [%v, %v]", exp, min, max)
	}
}

func TestParseToken_Expired(t *testing.T) {
	// Negative TTL issues a token that expired in the past.
	token, err := IssueToken("usr-12345678", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	_, err = ParseToken(token, testSecret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := IssueToken("usr-12345678", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	_, err = ParseToken(token, "a-completely-different-secret-value")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestParseToken_Tampered(t *testing.T) {
	token, err := IssueToken("usr-12345678", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 JWT segments, got %d", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = ParseToken(tampered, testSecret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "garbage"},
		{"two segments", "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, testSecret)
			if !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("ParseToken() error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}
