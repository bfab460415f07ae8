// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"compass/internal/delivery/http/middleware"
	"compass/internal/delivery/http/response"
	"compass/internal/domain/entity"
	domainerrors "compass/internal/domain/errors"
	"compass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for account and profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *ProfileHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Registration successful")
}

// Login handles the credential check and returns a signed token.
func (h *ProfileHandler) Login(c echo.Context) error {
	var input usecase.CredentialsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Authenticate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// FetchProfile verifies credentials in the body and returns the full profile.
func (h *ProfileHandler) FetchProfile(c echo.Context) error {
	var input usecase.CredentialsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fetch input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.FetchProfile(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile fetched successfully")
}

// UpdateSection handles PUT /profile/:email/:section. The section name is
// resolved before the usecase runs, so an unknown name never reaches the
// store.
func (h *ProfileHandler) UpdateSection(c echo.Context) error {
	section, ok := entity.ParseSection(c.Param("section"))
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidSection.WrapMessage("unknown section " + c.Param("section")))
	}

	var patch usecase.SectionFields
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid section payload")
	}

	if err := h.uc.UpdateSection(c.Request().Context(), c.Param("email"), section, &patch); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, section.String()+" updated successfully")
}

// Me returns the profile of the bearer-token subject.
func (h *ProfileHandler) Me(c echo.Context) error {
	email, ok := c.Get(middleware.KeyAuthenticatedEmail).(string)
	if !ok || email == "" {
		return response.Unauthorized(c, "TOKEN_INVALID", "Subject missing from token")
	}

	output, err := h.uc.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
