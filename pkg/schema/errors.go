package schema

import (
	"fmt"
	"strings"
)

// FieldError describes one definition problem on a specific field.
type FieldError struct {
	// Field is the declared field name, or "schema" for container-level
	// problems.
	Field string

	// Message is a human-readable description of the problem.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DefinitionError reports one or more problems in a Schema. It is fatal:
// a container cannot be constructed from a schema that fails Check.
type DefinitionError struct {
	// Errors contains all definition problems found in the schema.
	Errors []FieldError
}

// Error returns a formatted string containing all definition errors.
func (e *DefinitionError) Error() string {
	if len(e.Errors) == 0 {
		return "schema definition failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("schema definition failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("schema definition failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}
