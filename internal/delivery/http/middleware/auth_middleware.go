package middleware

import (
	"strings"

	"compass/internal/delivery/http/response"
	"compass/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyAuthenticatedEmail is the echo.Context key under which Authenticate
// stores the verified token subject.
const KeyAuthenticatedEmail = "authenticatedEmail"

// AuthMiddleware guards routes with bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the verified email on
// the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		if claims.Email == "" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Subject missing from token")
		}

		c.Set(KeyAuthenticatedEmail, claims.Email)

		return next(c)
	}
}
