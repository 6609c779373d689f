// Package filtersql compiles validated filters to parameterized SQLite SQL.
//
// Every query includes ORDER BY for deterministic results, and values are
// always parameterized, never interpolated into the SQL text.
package filtersql

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/strand-db/strand/internal/filter"
)

// selectColumns is the full record column list, in scan order.
const selectColumns = "id, value, length, is_palindrome, unique_characters, word_count, character_frequency, created_at"

// stableOrder is the reference result order: creation-time descending with
// an id tiebreak. Both columns are TEXT, so the default BINARY collation
// applies. Callers must not depend on any order beyond this.
const stableOrder = "created_at DESC, id ASC"

// Compile converts a compiled filter into a full SELECT statement over the
// strings table. Returns (sql, params).
//
// A filter with no fields compiles to an unfiltered scan, which is valid
// for direct structured queries (matches everything).
func Compile(c filter.Compiled) (string, []any) {
	var clauses []string
	var params []any

	if c.IsPalindrome != nil {
		clauses = append(clauses, "is_palindrome = ?")
		params = append(params, boolToInt(*c.IsPalindrome))
	}
	if c.MinLength != nil {
		clauses = append(clauses, "length >= ?")
		params = append(params, int64(*c.MinLength))
	}
	if c.MaxLength != nil {
		clauses = append(clauses, "length <= ?")
		params = append(params, int64(*c.MaxLength))
	}
	if c.WordCount != nil {
		clauses = append(clauses, "word_count = ?")
		params = append(params, int64(*c.WordCount))
	}
	if c.HasContains {
		sql, containsParams := compileContains(c.ContainsRune)
		clauses = append(clauses, sql)
		params = append(params, containsParams...)
	}

	var where string
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	sql := fmt.Sprintf("SELECT %s FROM strings%s ORDER BY %s", selectColumns, where, stableOrder)
	return sql, params
}

// compileContains builds the case-insensitive substring test for a single
// code point. SQLite's lower() folds ASCII only, so instead of folding the
// stored value we probe for both case variants of the (already folded)
// needle against the raw value. This stays correct for non-ASCII letters.
func compileContains(r rune) (string, []any) {
	upper := unicode.ToUpper(r)
	if upper == r {
		return "instr(value, ?) > 0", []any{string(r)}
	}
	return "(instr(value, ?) > 0 OR instr(value, ?) > 0)", []any{string(r), string(upper)}
}

// boolToInt maps a bool onto the INTEGER column representation.
func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
