package nlq

import (
	"errors"
	"fmt"
)

// UnparseableError reports that a natural-language query matched none of
// the recognized patterns. Distinct from filter.ConflictingFilterError:
// here no filter could be derived at all.
type UnparseableError struct {
	Query string
}

// Error implements the error interface.
func (e *UnparseableError) Error() string {
	return fmt.Sprintf("could not derive a filter from query %q", e.Query)
}

// IsUnparseable returns true if the error is an UnparseableError.
// Uses errors.As to handle wrapped errors.
func IsUnparseable(err error) bool {
	var ue *UnparseableError
	return errors.As(err, &ue)
}
