// Package auth provides authentication for ServoLink Core.
//
// It implements a single-tier account model with:
//   - bcrypt password hashing (cost configurable, default 10)
//   - Stateless JWT access tokens (HS256, signature + expiry validation only)
//   - Anti-enumeration login: unknown email and wrong password are
//     indistinguishable to the caller
//
// There is no refresh token or server-side session state: a token is
// valid until it expires, and logout is purely a client-side concern.
// Revocation before expiry would require a token denylist, which this
// system deliberately does not carry.
package auth
