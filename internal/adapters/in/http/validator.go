package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator interface.
// Bound request DTOs declare their constraints through `validate` struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for incoming request DTOs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the bound value against its struct tags.
// The raw validation error is returned so handlers decide the response shape.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
