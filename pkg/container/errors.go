package container

import (
	"errors"
	"fmt"
)

// ErrUnknownField marks access to a field the schema does not declare.
// This is a caller-side error, distinct from any validation failure.
var ErrUnknownField = errors.New("unknown field")

// ErrAlreadyRegistered marks a second Register call for the same name.
var ErrAlreadyRegistered = errors.New("container already registered")

// ErrNotRegistered marks an Instance call for a name never registered.
var ErrNotRegistered = errors.New("container not registered")

// UnknownFieldError reports access to an undeclared field.
type UnknownFieldError struct {
	// Container is the container name.
	Container string

	// Field is the undeclared name that was accessed.
	Field string
}

// Error returns the formatted message.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("container %q declares no field %q", e.Container, e.Field)
}

// Unwrap makes errors.Is(err, ErrUnknownField) work.
func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

// TypeMismatchError reports a typed getter used on a field whose resolved
// value has a different type.
type TypeMismatchError struct {
	Field string
	Want  string
	Got   any
}

// Error returns the formatted message.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q is not a %s (resolved value is %T)", e.Field, e.Want, e.Got)
}
