package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"compass/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(email string) (string, error) {
	args := m.Called(email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) TokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

func serveWithAuth(tokenSvc service.TokenService, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		email, _ := c.Get(KeyAuthenticatedEmail).(string)

		return c.String(http.StatusOK, email)
	}, NewAuthMiddleware(tokenSvc).Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("ValidToken", func(t *testing.T) {
		t.Parallel()

		tokenSvc := new(mockTokenService)
		tokenSvc.On("Verify", "signed-token").
			Return(&service.Claims{Email: "alice@example.com"}, nil).Once()

		rec := serveWithAuth(tokenSvc, "Bearer signed-token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice@example.com", rec.Body.String())
	})

	t.Run("MissingHeader", func(t *testing.T) {
		t.Parallel()

		rec := serveWithAuth(new(mockTokenService), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("NotBearer", func(t *testing.T) {
		t.Parallel()

		rec := serveWithAuth(new(mockTokenService), "Basic abc123")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		t.Parallel()

		tokenSvc := new(mockTokenService)
		tokenSvc.On("Verify", "forged").
			Return(nil, errors.New("signature invalid")).Once()

		rec := serveWithAuth(tokenSvc, "Bearer forged")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
