// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound input DTOs.
package validator

import (
	domainerrors "afritrade/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the validator installed on the echo instance.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs the struct tags and maps failures onto the validation error
// so the error middleware renders them as a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
