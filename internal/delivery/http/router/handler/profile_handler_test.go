package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"compass/internal/delivery/http/middleware"
	"compass/internal/delivery/http/response"
	"compass/internal/delivery/http/validator"
	"compass/internal/domain/entity"
	domainerrors "compass/internal/domain/errors"
	"compass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockProfileUsecase is a testify mock for usecase.ProfileUsecase.
type mockProfileUsecase struct {
	mock.Mock
}

func (m *mockProfileUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.ProfileOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.ProfileOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProfileUsecase) Authenticate(ctx context.Context, input *usecase.CredentialsInput) (*usecase.TokenOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.TokenOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProfileUsecase) FetchProfile(ctx context.Context, input *usecase.CredentialsInput) (*usecase.ProfileOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.ProfileOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProfileUsecase) UpdateSection(ctx context.Context, email string, section entity.Section, patch *usecase.SectionFields) error {
	args := m.Called(ctx, email, section, patch)

	return args.Error(0)
}

func (m *mockProfileUsecase) GetByEmail(ctx context.Context, email string) (*usecase.ProfileOutput, error) {
	args := m.Called(ctx, email)
	if output, ok := args.Get(0).(*usecase.ProfileOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func newHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return NewProfileHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	t.Run("Created", func(t *testing.T) {
		t.Parallel()

		uc := new(mockProfileUsecase)
		uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
			return input.Email == "alice@example.com" && input.FullName == "Alice"
		})).Return(&usecase.ProfileOutput{
			ID:            1,
			Email:         "alice@example.com",
			SectionFields: usecase.SectionFields{FullName: "Alice"},
		}, nil).Once()

		e := newTestEcho(t)
		e.POST("/auth/register", newHandler(uc).Register)

		body := `{"email":"alice@example.com","password":"s3cret","fullName":"Alice"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
		uc.AssertExpectations(t)
	})

	t.Run("MissingPassword", func(t *testing.T) {
		t.Parallel()

		uc := new(mockProfileUsecase)

		e := newTestEcho(t)
		e.POST("/auth/register", newHandler(uc).Register)

		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"alice@example.com"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
		uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		t.Parallel()

		uc := new(mockProfileUsecase)
		uc.On("Register", mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrEmailTaken, "registration rejected")).Once()

		e := newTestEcho(t)
		e.POST("/auth/register", newHandler(uc).Register)

		body := `{"email":"alice@example.com","password":"s3cret"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "EMAIL_TAKEN", resp.Error.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		uc := new(mockProfileUsecase)
		uc.On("Authenticate", mock.Anything, mock.MatchedBy(func(input *usecase.CredentialsInput) bool {
			return input.Email == "alice@example.com" && input.Password == "s3cret"
		})).Return(&usecase.TokenOutput{Message: "Login Successful", Token: "signed-token"}, nil).Once()

		e := newTestEcho(t)
		e.POST("/auth/login", newHandler(uc).Login)

		body := `{"email":"alice@example.com","password":"s3cret"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "signed-token")
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		t.Parallel()

		uc := new(mockProfileUsecase)
		uc.On("Authenticate", mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")).Once()

		e := newTestEcho(t)
		e.POST("/auth/login", newHandler(uc).Login)

		body := `{"email":"alice@example.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
		assert.Equal(t, "invalid email or password", resp.Message)
	})
}

func TestFetchProfileHandler(t *testing.T) {
	t.Parallel()

	uc := new(mockProfileUsecase)
	uc.On("FetchProfile", mock.Anything, mock.Anything).Return(&usecase.ProfileOutput{
		ID:            1,
		Email:         "alice@example.com",
		SectionFields: usecase.SectionFields{FullName: "Alice"},
	}, nil).Once()

	e := newTestEcho(t)
	e.POST("/auth/fetch-profile", newHandler(uc).FetchProfile)

	body := `{"email":"alice@example.com","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/fetch-profile", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fullName":"Alice"`)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestUpdateSectionHandler(t *testing.T) {
	t.Parallel()

	t.Run("KnownSection", func(t *testing.T) {
		t.Parallel()

		uc := new(mockProfileUsecase)
		uc.On("UpdateSection", mock.Anything, "alice@example.com", entity.SectionEducation,
			mock.MatchedBy(func(patch *usecase.SectionFields) bool {
				return patch.EducationLevel == "PhD"
			})).Return(nil).Once()

		e := newTestEcho(t)
		e.PUT("/profile/:email/:section", newHandler(uc).UpdateSection)

		body := `{"educationLevel":"PhD"}`
		req := httptest.NewRequest(http.MethodPut, "/profile/alice@example.com/education", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("SectionNameCaseInsensitive", func(t *testing.T) {
		t.Parallel()

		uc := new(mockProfileUsecase)
		uc.On("UpdateSection", mock.Anything, "alice@example.com", entity.SectionSkills, mock.Anything).
			Return(nil).Once()

		e := newTestEcho(t)
		e.PUT("/profile/:email/:section", newHandler(uc).UpdateSection)

		req := httptest.NewRequest(http.MethodPut, "/profile/alice@example.com/SKILLS", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("UnknownSectionNeverReachesUsecase", func(t *testing.T) {
		t.Parallel()

		uc := new(mockProfileUsecase)

		e := newTestEcho(t)
		e.PUT("/profile/:email/:section", newHandler(uc).UpdateSection)

		req := httptest.NewRequest(http.MethodPut, "/profile/alice@example.com/hobbies", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "INVALID_SECTION", resp.Error.Code)
		uc.AssertNotCalled(t, "UpdateSection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		t.Parallel()

		uc := new(mockProfileUsecase)
		uc.On("UpdateSection", mock.Anything, "nobody@example.com", entity.SectionPersonal, mock.Anything).
			Return(errors.Wrap(domainerrors.ErrProfileNotFound, "section update target missing")).Once()

		e := newTestEcho(t)
		e.PUT("/profile/:email/:section", newHandler(uc).UpdateSection)

		req := httptest.NewRequest(http.MethodPut, "/profile/nobody@example.com/personal", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	e := newTestEcho(t)
	e.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
