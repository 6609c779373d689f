package filter

import (
	"unicode"
	"unicode/utf8"
)

// Compile validates and normalizes a filter request.
//
// Validation rules, in order:
//   - length bounds and word_count must be non-negative (InvalidFilterError)
//   - contains_character must be exactly one code point (InvalidFilterError)
//   - min_length <= max_length when both are present (ConflictingFilterError)
//
// Normalization case-folds the contains_character code point so the store
// can match case-insensitively.
func Compile(f Filter) (Compiled, error) {
	if f.MinLength != nil && *f.MinLength < 0 {
		return Compiled{}, &InvalidFilterError{Field: "min_length", Reason: "must be a non-negative integer"}
	}
	if f.MaxLength != nil && *f.MaxLength < 0 {
		return Compiled{}, &InvalidFilterError{Field: "max_length", Reason: "must be a non-negative integer"}
	}
	if f.WordCount != nil && *f.WordCount < 0 {
		return Compiled{}, &InvalidFilterError{Field: "word_count", Reason: "must be a non-negative integer"}
	}

	c := Compiled{
		IsPalindrome: f.IsPalindrome,
		MinLength:    f.MinLength,
		MaxLength:    f.MaxLength,
		WordCount:    f.WordCount,
		ContainsRune: utf8.RuneError,
	}

	if f.ContainsCharacter != nil {
		r, size := utf8.DecodeRuneInString(*f.ContainsCharacter)
		if size == 0 || r == utf8.RuneError && size == 1 || size != len(*f.ContainsCharacter) {
			return Compiled{}, &InvalidFilterError{Field: "contains_character", Reason: "must be exactly one character"}
		}
		c.ContainsRune = unicode.ToLower(r)
		c.HasContains = true
	}

	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		return Compiled{}, &ConflictingFilterError{MinLength: *c.MinLength, MaxLength: *c.MaxLength}
	}

	return c, nil
}
