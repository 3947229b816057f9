package api

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/mwade84/servolink/internal/audit"
	"github.com/mwade84/servolink/internal/auth"
)

// registerRequest is the request body for POST /register.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the registration payload.
// Email format is deliberately not validated beyond presence: the address
// is an opaque login identifier, not a mailbox we deliver to.
func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, auth.MaxCredentialLength)),
		validation.Field(&r.Email, validation.Required, validation.Length(1, auth.MaxCredentialLength)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, auth.MaxCredentialLength)),
	)
}

// loginRequest is the request body for POST /login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login payload.
func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(1, auth.MaxCredentialLength)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, auth.MaxCredentialLength)),
	)
}

// loginResponse is the response body for a successful POST /login.
type loginResponse struct {
	Token string `json:"token"`
}

// handleRegister creates a new user account.
//
// Failures deliberately collapse to a generic 500: the response must not
// reveal whether an email address already has an account.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	user, err := s.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		// Backstop for the edge validation above; a breach is a rejected
		// input, not a store failure.
		if errors.Is(err, auth.ErrCredentialTooLong) {
			writeBadRequest(w, err.Error())
			return
		}
		if errors.Is(err, auth.ErrDuplicateCredential) {
			// Same body as any other failure; only the log knows why.
			s.logger.Warn("registration rejected", "reason", "duplicate email")
		} else {
			s.logger.Error("registration failed", "error", err)
		}
		writeInternalError(w, "Error registering user")
		return
	}

	s.auditLog(audit.AuditLog{
		Action:     audit.ActionRegister,
		EntityType: "user",
		EntityID:   user.ID,
		UserID:     user.ID,
		Source:     "api",
	})

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "User registered successfully!",
	})
}

// handleLogin verifies credentials and returns a signed access token.
//
// Unknown email and wrong password produce byte-identical 400 responses so
// the endpoint cannot be used to enumerate registered addresses.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, "Invalid email or password")
		return
	}

	token, user, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeBadRequest(w, "Invalid email or password")
			return
		}
		s.logger.Error("login failed", "error", err)
		writeInternalError(w, "Error logging in")
		return
	}

	s.auditLog(audit.AuditLog{
		Action:     audit.ActionLogin,
		EntityType: "user",
		EntityID:   user.ID,
		UserID:     user.ID,
		Source:     "api",
	})

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
