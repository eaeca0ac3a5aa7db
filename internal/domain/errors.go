package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrGeneration means the provider returned no parseable payload or the
	// payload lacks a required field. Fatal to the current operation.
	ErrGeneration = errors.New("generation failed")

	// ErrExtraction means a free-text response could not be coerced into the
	// expected structure. Callers switch to a fallback instead of surfacing it.
	ErrExtraction = errors.New("extraction failed")

	// ErrLookup marks a failed on-demand enrichment. Absorbed into placeholder text.
	ErrLookup = errors.New("lookup failed")
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

// GenerationError wraps ErrGeneration with the operation that failed.
func GenerationError(op string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", op, ErrGeneration)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrGeneration, cause)
}
