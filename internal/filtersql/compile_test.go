package filtersql

import (
	"strings"
	"testing"

	"github.com/strand-db/strand/internal/filter"
)

func mustCompile(t *testing.T, f filter.Filter) filter.Compiled {
	t.Helper()
	c, err := filter.Compile(f)
	if err != nil {
		t.Fatalf("filter.Compile failed: %v", err)
	}
	return c
}

func TestCompile_EmptyFilter(t *testing.T) {
	sql, params := Compile(mustCompile(t, filter.Filter{}))

	if strings.Contains(sql, "WHERE") {
		t.Errorf("empty filter compiled a WHERE clause: %s", sql)
	}
	if !strings.HasSuffix(sql, "ORDER BY created_at DESC, id ASC") {
		t.Errorf("missing stable ORDER BY: %s", sql)
	}
	if len(params) != 0 {
		t.Errorf("empty filter produced params: %v", params)
	}
}

func TestCompile_AllFields(t *testing.T) {
	f := filter.Filter{
		IsPalindrome:      filter.Bool(true),
		MinLength:         filter.Int(3),
		MaxLength:         filter.Int(10),
		WordCount:         filter.Int(1),
		ContainsCharacter: filter.String("a"),
	}

	sql, params := Compile(mustCompile(t, f))

	for _, clause := range []string{
		"is_palindrome = ?",
		"length >= ?",
		"length <= ?",
		"word_count = ?",
		"instr(value, ?) > 0",
	} {
		if !strings.Contains(sql, clause) {
			t.Errorf("missing clause %q in %s", clause, sql)
		}
	}

	// Values are parameterized, never interpolated.
	if strings.Contains(sql, " 3") || strings.Contains(sql, " 10") {
		t.Errorf("literal value interpolated into SQL: %s", sql)
	}

	// bool + min + max + word_count + two case variants of 'a'
	if len(params) != 6 {
		t.Errorf("params = %v, want 6 values", params)
	}
	if params[0] != int64(1) {
		t.Errorf("is_palindrome param = %v, want 1", params[0])
	}
	if params[4] != "a" || params[5] != "A" {
		t.Errorf("contains params = %v, want both case variants of 'a'", params[4:])
	}
}

func TestCompile_ContainsCaseless(t *testing.T) {
	// A caseless code point probes once.
	f := filter.Filter{ContainsCharacter: filter.String("7")}
	sql, params := Compile(mustCompile(t, f))

	if strings.Count(sql, "instr") != 1 {
		t.Errorf("caseless needle should probe once: %s", sql)
	}
	if len(params) != 1 || params[0] != "7" {
		t.Errorf("params = %v, want [7]", params)
	}
}

func TestCompile_ContainsNonASCII(t *testing.T) {
	f := filter.Filter{ContainsCharacter: filter.String("ä")}
	sql, params := Compile(mustCompile(t, f))

	if strings.Count(sql, "instr") != 2 {
		t.Errorf("cased needle should probe both variants: %s", sql)
	}
	if params[0] != "ä" || params[1] != "Ä" {
		t.Errorf("params = %v, want both case variants of ä", params)
	}
}

func TestCompile_StableOrderAlways(t *testing.T) {
	filters := []filter.Filter{
		{},
		{IsPalindrome: filter.Bool(false)},
		{MinLength: filter.Int(0), MaxLength: filter.Int(100)},
	}

	for _, f := range filters {
		sql, _ := Compile(mustCompile(t, f))
		if !strings.HasSuffix(sql, "ORDER BY created_at DESC, id ASC") {
			t.Errorf("query does not end with stable ORDER BY: %s", sql)
		}
	}
}

func TestCompile_OrderingTermSyntax(t *testing.T) {
	// In a SQLite ordering term a COLLATE clause must precede ASC/DESC;
	// trailing modifiers after the direction are a syntax error. The
	// ordering term here must stay a plain column + direction list.
	sql, _ := Compile(mustCompile(t, filter.Filter{}))

	idx := strings.Index(sql, "ORDER BY ")
	if idx < 0 {
		t.Fatalf("no ORDER BY in %s", sql)
	}
	for _, term := range strings.Split(sql[idx+len("ORDER BY "):], ", ") {
		words := strings.Fields(term)
		if len(words) != 2 {
			t.Errorf("ordering term %q is not column + direction", term)
			continue
		}
		if dir := words[1]; dir != "ASC" && dir != "DESC" {
			t.Errorf("ordering term %q does not end in a direction", term)
		}
	}
}
