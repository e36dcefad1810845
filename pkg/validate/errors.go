package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind string

const (
	// KindMissingRequired marks a required field with no source value and
	// no default.
	KindMissingRequired Kind = "missing_required"
	// KindTypeCoercion marks a raw value that cannot be coerced into the
	// rule's target type.
	KindTypeCoercion Kind = "type_coercion"
	// KindConstraint marks a coerced value that violates a declared
	// constraint.
	KindConstraint Kind = "constraint"
)

// Error is a single-field validation failure.
type Error struct {
	// Field is the declared field name.
	Field string

	// Kind classifies the failure.
	Kind Kind

	// Constraint names the violated constraint for KindConstraint
	// failures (e.g. "ge", "pattern"); empty otherwise.
	Constraint string

	// Message is a human-readable description including the offending
	// value where one exists.
	Message string
}

// Error returns the formatted failure message.
func (e *Error) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s: constraint %s violated: %s", e.Field, e.Constraint, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors aggregates per-field failures from eager validation.
type Errors struct {
	// Errors holds one entry per failed field, in declaration order.
	Errors []*Error
}

// Error returns a formatted string containing all validation errors.
func (e *Errors) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// IsMissingRequired reports whether err is a missing-required failure.
func IsMissingRequired(err error) bool {
	return isKind(err, KindMissingRequired)
}

// IsTypeCoercion reports whether err is a coercion failure.
func IsTypeCoercion(err error) bool {
	return isKind(err, KindTypeCoercion)
}

// IsConstraint reports whether err is a constraint failure.
func IsConstraint(err error) bool {
	return isKind(err, KindConstraint)
}

func isKind(err error, k Kind) bool {
	var ve *Error
	return errors.As(err, &ve) && ve.Kind == k
}
