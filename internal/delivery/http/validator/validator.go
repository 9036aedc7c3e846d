// Package validator adapts go-playground/validator to echo.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates an echo validator backed by the given validate instance.
func New(validate *validator.Validate) *CustomValidator {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}

	return &CustomValidator{validate: validate}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
