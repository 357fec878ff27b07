package domain

import (
	"errors"
	"time"
)

var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")

// TokenClaims is the identity snapshot carried by a validated session token.
// Role changes after issuance do not show up here until the token expires
// and the user authenticates again.
type TokenClaims struct {
	UserID    string
	Username  string
	Email     string
	Roles     []string
	ExpiresAt time.Time
}
