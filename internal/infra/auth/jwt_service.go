// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"compass/config"
	"compass/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are signed with a process-wide symmetric key (HS256) and carry the
// subject email plus an expiration claim.
type jwtService struct {
	signingKey []byte
	tokenTTL   time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("jwt signing key must be provided")
	}

	return &jwtService{
		signingKey: []byte(cfg.SecretKey.Signing),
		tokenTTL:   cfg.TokenTTL(),
	}, nil
}

// Issue creates a signed token asserting the email as subject, expiring
// tokenTTL after issuance.
func (s *jwtService) Issue(email string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the validity of a token string and returns its claims.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.signingKey, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	if claims.Email == "" {
		claims.Email = claims.Subject
	}

	return claims, nil
}

// TokenTTL returns the configured validity window for issued tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.tokenTTL
}
