package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthKind records which login variant minted the token.
const (
	AuthKindPassword = "password"
	AuthKindRFID     = "rfid"
)

// Claims is the payload carried by both the access and refresh cookies.
// Identity fields are denormalized at mint time and may go stale relative to
// the user record until the next login. The session identifier lives in
// RegisteredClaims.ID (jti); the user id in Subject (sub).
type Claims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
	RoleID   *int64 `json:"role_id,omitempty"`
	AuthKind string `json:"auth_kind,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// SessionID returns the jti claim.
func (c *Claims) SessionID() string {
	return c.ID
}
