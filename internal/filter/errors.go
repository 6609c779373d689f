package filter

import (
	"errors"
	"fmt"
)

// InvalidFilterError reports a malformed filter field: the field is
// individually broken (multi-character contains_character, negative length
// bound). Rejected before reaching storage.
type InvalidFilterError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter field %q: %s", e.Field, e.Reason)
}

// ConflictingFilterError reports filter bounds that are individually
// well-formed but jointly unsatisfiable (min_length > max_length). Distinct
// from InvalidFilterError so adapters can map it to a different client
// error; never silently executed as an empty-result query.
type ConflictingFilterError struct {
	MinLength int
	MaxLength int
}

// Error implements the error interface.
func (e *ConflictingFilterError) Error() string {
	return fmt.Sprintf("conflicting filter bounds: min_length %d > max_length %d", e.MinLength, e.MaxLength)
}

// IsInvalidFilter returns true if the error is an InvalidFilterError.
// Uses errors.As to handle wrapped errors.
func IsInvalidFilter(err error) bool {
	var ie *InvalidFilterError
	return errors.As(err, &ie)
}

// IsConflictingFilter returns true if the error is a ConflictingFilterError.
// Uses errors.As to handle wrapped errors.
func IsConflictingFilter(err error) bool {
	var ce *ConflictingFilterError
	return errors.As(err, &ce)
}
