package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Properties is the immutable derived property set of a string value.
// Every field is a pure function of the value; none may change after the
// record is created.
type Properties struct {
	// Length counts Unicode code points, not bytes.
	Length int `json:"length"`

	// IsPalindrome is computed on a normalized form (lower-cased, every
	// character that is not an ASCII letter or digit dropped) compared to
	// its own reverse. An empty normalized form is trivially a palindrome.
	IsPalindrome bool `json:"is_palindrome"`

	// UniqueCharacters counts distinct code points of the raw value.
	// Case and punctuation are distinguished (no normalization).
	UniqueCharacters int `json:"unique_characters"`

	// WordCount is the number of maximal whitespace-delimited tokens after
	// trimming. Empty and whitespace-only values have a word count of 0.
	WordCount int `json:"word_count"`

	// CharacterFrequency maps each distinct code point of the raw value to
	// its occurrence count. Keys are single-code-point strings.
	CharacterFrequency map[string]int64 `json:"character_frequency_map"`

	// SHA256 duplicates the record id in the property set for API
	// convenience: the lower-hex SHA-256 of the value's UTF-8 bytes.
	SHA256 string `json:"sha256_hash"`
}

// Digest computes the content address of a value: SHA-256 over the UTF-8
// encoding of the untransformed value, hex-encoded lower-case, 64 characters.
func Digest(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// Analyze maps a string to its content address and property set.
// Deterministic and referentially transparent; it never fails.
func Analyze(value string) (string, Properties) {
	id := Digest(value)

	freq := make(map[string]int64)
	for _, r := range value {
		freq[string(r)]++
	}

	props := Properties{
		Length:             utf8.RuneCountInString(value),
		IsPalindrome:       isPalindrome(value),
		UniqueCharacters:   len(freq),
		WordCount:          len(strings.Fields(value)),
		CharacterFrequency: freq,
		SHA256:             id,
	}

	return id, props
}

// AnalyzeValue is the typed boundary for inputs that arrive as decoded
// documents (JSON, CUE) where the value may not be a string. Non-string
// input is a TypeMismatchError, never a silent coercion.
func AnalyzeValue(value any) (string, Properties, error) {
	s, ok := value.(string)
	if !ok {
		return "", Properties{}, NewTypeMismatchError(value)
	}
	id, props := Analyze(s)
	return id, props, nil
}

// isPalindrome reports whether the normalized form of value reads the same
// forwards and backwards. Normalization lower-cases and keeps only ASCII
// letters and digits.
func isPalindrome(value string) bool {
	var norm []rune
	for _, r := range value {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			norm = append(norm, r)
		}
	}

	for i, j := 0, len(norm)-1; i < j; i, j = i+1, j-1 {
		if norm[i] != norm[j] {
			return false
		}
	}
	return true
}
