// Package validation checks domain records before they are sent to the
// backend, so obviously bad mutations fail fast instead of being applied
// optimistically and then retracted.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates any model carrying `validate` tags.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Var validates a single value against a tag expression, e.g.
// Var(kind, "oneof=startup ngo foundation internal").
func Var(v any, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
