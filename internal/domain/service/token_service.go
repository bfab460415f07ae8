package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed,
// time-bound login tokens. This abstracts the details of token creation
// from the use cases.
type TokenService interface {
	// Issue creates a signed token asserting the given email as subject,
	// valid for the configured window from issuance.
	Issue(email string) (string, error)

	// Verify checks a token string and returns its claims when valid.
	Verify(tokenString string) (*Claims, error)

	// TokenTTL returns the configured validity window for issued tokens.
	TokenTTL() time.Duration
}
