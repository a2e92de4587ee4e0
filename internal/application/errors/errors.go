// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
)

// ValidationError indicates a request, filter or manifest failed validation.
type ValidationError struct {
	Cause   error
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (%d issues)", e.Field, e.Message, len(e.Details))
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// WrapValidationError creates a validation error around an underlying cause.
func WrapValidationError(field string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
