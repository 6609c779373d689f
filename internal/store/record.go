package store

import (
	"time"

	"github.com/strand-db/strand/internal/analysis"
)

// Record is the sole persisted entity: a string value, its content address,
// its derived properties, and its insertion timestamp.
//
// A Record is immutable after creation. The id is a pure function of Value
// (SHA-256, hex lower), and every Properties field is a pure function of
// Value: re-running analysis on a stored Value reproduces Properties
// exactly.
type Record struct {
	// ID is the hex-encoded SHA-256 digest of Value's UTF-8 bytes.
	// Primary key; doubles as the content address.
	ID string `json:"id"`

	// Value is the original string, stored verbatim (never normalized).
	Value string `json:"value"`

	// Properties is the immutable derived property set.
	Properties analysis.Properties `json:"properties"`

	// CreatedAt is set once at insertion and never mutated.
	CreatedAt time.Time `json:"created_at"`
}

// createdAtLayout is a fixed-width RFC 3339 UTC format. Fixed width keeps
// lexicographic column ordering identical to chronological ordering, which
// the stable query ORDER BY relies on.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// formatCreatedAt renders a timestamp for the created_at column.
func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}

// parseCreatedAt parses a created_at column value.
func parseCreatedAt(s string) (time.Time, error) {
	return time.Parse(createdAtLayout, s)
}
