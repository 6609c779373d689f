package store

import (
	"errors"
	"fmt"
)

// ConflictError reports an insert for a value whose content address already
// exists. Surfaced to the caller, never retried automatically; the caller
// decides whether to fetch the existing record instead.
type ConflictError struct {
	// ID is the content address both values share.
	ID string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("string already stored under content address %s", e.ID)
}

// NotFoundError reports a lookup or delete whose target does not exist.
// A normal negative result, not a systemic failure.
type NotFoundError struct {
	// Value is the string that was looked up.
	Value string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no record stored for value %q", e.Value)
}

// IsConflict returns true if the error is a ConflictError.
// Uses errors.As to handle wrapped errors.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsNotFound returns true if the error is a NotFoundError.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
