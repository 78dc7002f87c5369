package validator

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/clinickit/agenda-api/pkg/errors"
)

// Validator validates request payloads against their struct tags.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

// Validate checks the struct's `validate` tags and reports failures as
// validation errors in the application taxonomy.
func (val *Validator) Validate(obj interface{}) error {
	if err := val.v.Struct(obj); err != nil {
		return apperrors.Validation("invalid request", err)
	}
	return nil
}

// ValidateVar checks a single value against a rule expression.
func (val *Validator) ValidateVar(value interface{}, rules string) error {
	if err := val.v.Var(value, rules); err != nil {
		return apperrors.Validation("invalid value", err)
	}
	return nil
}
