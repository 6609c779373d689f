package filter

import (
	"testing"
)

func TestCompile_EmptyFilterMatchesEverything(t *testing.T) {
	c, err := Compile(Filter{})
	if err != nil {
		t.Fatalf("Compile(empty) failed: %v", err)
	}
	if len(c.Applied()) != 0 {
		t.Errorf("empty filter applied %v, want none", c.Applied())
	}
}

func TestCompile_AllFields(t *testing.T) {
	f := Filter{
		IsPalindrome:      Bool(true),
		MinLength:         Int(3),
		MaxLength:         Int(10),
		WordCount:         Int(2),
		ContainsCharacter: String("A"),
	}

	c, err := Compile(f)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if c.IsPalindrome == nil || !*c.IsPalindrome {
		t.Error("is_palindrome not carried through")
	}
	if !c.HasContains || c.ContainsRune != 'a' {
		t.Errorf("contains_character = %q, want case-folded 'a'", c.ContainsRune)
	}

	applied := c.Applied()
	if applied["contains_character"] != "a" {
		t.Errorf("applied contains_character = %v, want \"a\"", applied["contains_character"])
	}
	if applied["min_length"] != int64(3) {
		t.Errorf("applied min_length = %v, want 3", applied["min_length"])
	}
}

func TestCompile_ConflictingBounds(t *testing.T) {
	_, err := Compile(Filter{MinLength: Int(10), MaxLength: Int(5)})
	if err == nil {
		t.Fatal("Compile(min=10, max=5) succeeded, want ConflictingFilterError")
	}
	if !IsConflictingFilter(err) {
		t.Errorf("error = %v, want ConflictingFilterError", err)
	}
	if IsInvalidFilter(err) {
		t.Error("conflicting bounds misreported as InvalidFilterError")
	}
}

func TestCompile_EqualBoundsAllowed(t *testing.T) {
	c, err := Compile(Filter{MinLength: Int(5), MaxLength: Int(5)})
	if err != nil {
		t.Fatalf("Compile(min=5, max=5) failed: %v", err)
	}
	if *c.MinLength != 5 || *c.MaxLength != 5 {
		t.Error("equal bounds not carried through")
	}
}

func TestCompile_InvalidContainsCharacter(t *testing.T) {
	for _, bad := range []string{"", "ab", "a b", "日本"} {
		_, err := Compile(Filter{ContainsCharacter: String(bad)})
		if err == nil {
			t.Errorf("Compile(contains=%q) succeeded, want InvalidFilterError", bad)
			continue
		}
		if !IsInvalidFilter(err) {
			t.Errorf("Compile(contains=%q) error = %v, want InvalidFilterError", bad, err)
		}
	}
}

func TestCompile_SingleMultibyteCharacter(t *testing.T) {
	c, err := Compile(Filter{ContainsCharacter: String("日")})
	if err != nil {
		t.Fatalf("Compile(contains=日) failed: %v", err)
	}
	if c.ContainsRune != '日' {
		t.Errorf("contains rune = %q, want 日", c.ContainsRune)
	}
}

func TestCompile_NegativeBounds(t *testing.T) {
	cases := []Filter{
		{MinLength: Int(-1)},
		{MaxLength: Int(-1)},
		{WordCount: Int(-3)},
	}

	for _, f := range cases {
		_, err := Compile(f)
		if err == nil {
			t.Errorf("Compile(%+v) succeeded, want InvalidFilterError", f)
			continue
		}
		if !IsInvalidFilter(err) {
			t.Errorf("Compile(%+v) error = %v, want InvalidFilterError", f, err)
		}
	}
}
