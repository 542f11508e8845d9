package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrSubprocess        = errors.New("subprocess failed")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrMalformedAnalysis = errors.New("malformed analysis")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// LookupError is returned when the lookup process exits with a non-zero status.
// Output holds everything the process wrote to stdout and stderr.
type LookupError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s exited with status %d: output=%q", e.Command, e.ExitCode, e.Output)
}

func (e *LookupError) Unwrap() error { return ErrSubprocess }
