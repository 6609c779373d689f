// Package analysis computes the canonical derived property set for a string.
//
// Analyze is a pure function: for any value it always produces the same
// Properties and the same content address (lower-hex SHA-256 of the value's
// UTF-8 bytes). Nothing in this package touches storage, wall time, or
// locale state, so recomputing the properties of a stored value must
// reproduce the stored properties byte for byte.
//
// The only error path is the typed boundary: AnalyzeValue rejects non-string
// input with TypeMismatchError instead of coercing it.
package analysis
