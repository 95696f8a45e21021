// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	validatorv10 "github.com/go-playground/validator/v10"

	domainerrors "tally/internal/domain/errors"
)

// EchoValidator validates bound request structs using `validate` tags.
type EchoValidator struct {
	validate *validatorv10.Validate
}

// New creates an EchoValidator.
func New() *EchoValidator {
	return &EchoValidator{validate: validatorv10.New()}
}

// Validate implements echo.Validator. Failures surface as the application's
// validation error so the error handler renders a consistent 400.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
