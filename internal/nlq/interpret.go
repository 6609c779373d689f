// Package nlq interprets constrained natural-language queries into
// structured filters.
//
// Recognition is pattern-based and case-insensitive; patterns match
// independently, so one query may set several filter fields at once. The
// interpreter's sole output is the same filter shape the compiler
// consumes; it never talks to the store.
package nlq

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/strand-db/strand/internal/filter"
)

var (
	reLongerThan  = regexp.MustCompile(`(?i)\blonger than (\d+)\b`)
	reShorterThan = regexp.MustCompile(`(?i)\bshorter than (\d+)\b`)

	// Exactly one letter: the trailing boundary rejects "the letter ab".
	reContainsLetter = regexp.MustCompile(`(?i)\bcontaining the letter (\p{L})\b`)
)

// Interpret converts a free-text query into a structured filter.
//
// Patterns:
//   - "single word"            → word_count = 1
//   - "palindrome"/"palindromic" → is_palindrome = true
//   - "longer than N"          → min_length = N+1 (strictly longer)
//   - "shorter than N"         → max_length = N-1 (strictly shorter)
//   - "containing the letter c" → contains_character = c, case-folded
//   - "first vowel"            → contains_character = 'a'
//
// "first vowel" always resolves to 'a'. That is a fixed heuristic carried
// over from the original behavior, not true first-vowel-of-the-string
// semantics.
//
// Fails with UnparseableError when no pattern matches anything, and with
// filter.ConflictingFilterError when the derived bounds are jointly
// unsatisfiable. The two are distinct outcomes: the first means no filter
// could be derived at all.
func Interpret(query string) (filter.Filter, error) {
	var f filter.Filter
	matched := false
	lower := strings.ToLower(query)

	if strings.Contains(lower, "single word") {
		f.WordCount = filter.Int(1)
		matched = true
	}

	if strings.Contains(lower, "palindrom") { // palindrome, palindromic
		f.IsPalindrome = filter.Bool(true)
		matched = true
	}

	if m := reLongerThan.FindStringSubmatch(query); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			f.MinLength = filter.Int(n + 1)
			matched = true
		}
	}

	if m := reShorterThan.FindStringSubmatch(query); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			f.MaxLength = filter.Int(n - 1)
			matched = true
		}
	}

	if m := reContainsLetter.FindStringSubmatch(query); m != nil {
		folded := strings.Map(unicode.ToLower, m[1])
		f.ContainsCharacter = filter.String(folded)
		matched = true
	}

	if strings.Contains(lower, "first vowel") {
		f.ContainsCharacter = filter.String("a")
		matched = true
	}

	if !matched {
		return filter.Filter{}, &UnparseableError{Query: query}
	}

	if f.MinLength != nil && f.MaxLength != nil && *f.MinLength > *f.MaxLength {
		return filter.Filter{}, &filter.ConflictingFilterError{
			MinLength: *f.MinLength,
			MaxLength: *f.MaxLength,
		}
	}

	return f, nil
}
