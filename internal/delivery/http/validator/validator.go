// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "compass/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// requestValidator wraps a validator instance so echo can validate bound DTOs.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Struct tag violations surface as the
// domain's validation error so the error handler maps them to 400.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
