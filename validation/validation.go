// Package validation performs pre-flight form validation before a payload is
// sent to the backend. Violations use the backend's own field-error shape so
// local and remote errors render identically.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violations maps a field name to its error messages.
type Violations map[string][]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add appends a message for a field.
func (v Violations) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Error wraps non-empty Violations so callers can return them as an error.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for field, msgs := range e.Violations {
		parts = append(parts, field+": "+strings.Join(msgs, ", "))
	}
	return strings.Join(parts, "; ")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a tagged request struct. It returns nil when the payload
// is clean and a *Error carrying field violations otherwise.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	violations := make(Violations, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		violations.Add(field, fieldMessage(field, fe))
	}
	return &Error{Violations: violations}
}

// fieldMessage converts a single failed tag into a human-readable message.
func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Primitive helpers for checks that have no struct to tag.

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, field+" is required")
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v.Add(field, field+" must be positive")
	}
}

func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if val < minVal || val > maxVal {
		v.Add(field, fmt.Sprintf("%s must be between %g and %g", field, minVal, maxVal))
	}
}
