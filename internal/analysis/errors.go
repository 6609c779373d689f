package analysis

import (
	"errors"
	"fmt"
)

// TypeMismatchError reports that input to analysis was not a string.
// It is local and immediately surfaced; callers never retry it.
type TypeMismatchError struct {
	// Got is the Go type of the rejected input.
	Got string
}

// NewTypeMismatchError creates a TypeMismatchError for the given input.
func NewTypeMismatchError(value any) *TypeMismatchError {
	return &TypeMismatchError{Got: fmt.Sprintf("%T", value)}
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value must be a string, got %s", e.Got)
}

// IsTypeMismatch returns true if the error is a TypeMismatchError.
// Uses errors.As to handle wrapped errors.
func IsTypeMismatch(err error) bool {
	var te *TypeMismatchError
	return errors.As(err, &te)
}
