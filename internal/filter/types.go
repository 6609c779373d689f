package filter

// Filter is a structured filter request. Every field is optional; a zero
// Filter is valid for direct structured queries and matches everything.
//
// Unrecognized fields in decoded documents are dropped by the decoder
// before a Filter is constructed, so the compiler only ever sees this
// canonical field set (forward compatibility: unknown fields are ignored,
// not rejected).
type Filter struct {
	// IsPalindrome matches records whose is_palindrome property equals it.
	IsPalindrome *bool `json:"is_palindrome,omitempty"`

	// MinLength keeps records with length >= MinLength. Must be >= 0.
	MinLength *int `json:"min_length,omitempty"`

	// MaxLength keeps records with length <= MaxLength. Must be >= 0.
	MaxLength *int `json:"max_length,omitempty"`

	// WordCount matches records with exactly this word count. Must be >= 0.
	WordCount *int `json:"word_count,omitempty"`

	// ContainsCharacter keeps records whose value contains the code point,
	// case-insensitively. Must be exactly one code point.
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// IsEmpty reports whether no field is set.
func (f Filter) IsEmpty() bool {
	return f.IsPalindrome == nil &&
		f.MinLength == nil &&
		f.MaxLength == nil &&
		f.WordCount == nil &&
		f.ContainsCharacter == nil
}

// Compiled is a validated, normalized filter. Construct only via Compile;
// a Compiled value always satisfies the validation rules (single-code-point
// needle already case-folded, non-negative bounds, min <= max).
type Compiled struct {
	IsPalindrome *bool
	MinLength    *int
	MaxLength    *int
	WordCount    *int

	// ContainsRune is the case-folded code point to search for,
	// utf8.RuneError when unset (HasContains false).
	ContainsRune rune
	HasContains  bool
}

// Applied echoes the filters a Compiled value actually carries, in the
// canonical field naming. Used by the query responses so callers can see
// exactly what was applied.
func (c Compiled) Applied() map[string]any {
	applied := make(map[string]any)
	if c.IsPalindrome != nil {
		applied["is_palindrome"] = *c.IsPalindrome
	}
	if c.MinLength != nil {
		applied["min_length"] = int64(*c.MinLength)
	}
	if c.MaxLength != nil {
		applied["max_length"] = int64(*c.MaxLength)
	}
	if c.WordCount != nil {
		applied["word_count"] = int64(*c.WordCount)
	}
	if c.HasContains {
		applied["contains_character"] = string(c.ContainsRune)
	}
	return applied
}

// Bool returns a pointer to b. Convenience for building filters.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n. Convenience for building filters.
func Int(n int) *int { return &n }

// String returns a pointer to s. Convenience for building filters.
func String(s string) *string { return &s }
