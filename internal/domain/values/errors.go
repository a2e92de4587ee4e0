package values

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is matched by every *InvalidArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a value rejected at construction time.
type InvalidArgumentError struct {
	Field    string   // Field that failed validation
	Value    string   // Raw value as supplied, before normalization
	Accepted []string // Canonical values the field may take
	Absent   bool     // Value was not supplied at all
}

func (e *InvalidArgumentError) Error() string {
	if e.Absent {
		return fmt.Sprintf("%s must not be absent", e.Field)
	}
	return fmt.Sprintf("invalid %s value: '%s'. valid options: [%s]",
		e.Field, e.Value, strings.Join(e.Accepted, ", "))
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates an error for a value outside the whitelist.
func NewInvalidArgumentError(field, value string, accepted []string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Field:    field,
		Value:    value,
		Accepted: append([]string(nil), accepted...),
	}
}

// NewAbsentArgumentError creates an error for a value that was not supplied.
func NewAbsentArgumentError(field string) *InvalidArgumentError {
	return &InvalidArgumentError{Field: field, Absent: true}
}
