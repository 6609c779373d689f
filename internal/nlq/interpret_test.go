package nlq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-db/strand/internal/filter"
)

func TestInterpret_CombinedPatterns(t *testing.T) {
	f, err := Interpret("Find a single word palindromic string longer than 5")
	require.NoError(t, err)

	require.NotNil(t, f.WordCount)
	assert.Equal(t, 1, *f.WordCount)

	require.NotNil(t, f.IsPalindrome)
	assert.True(t, *f.IsPalindrome)

	require.NotNil(t, f.MinLength)
	assert.Equal(t, 6, *f.MinLength, "longer than 5 is exclusive: min_length = 6")

	assert.Nil(t, f.MaxLength)
	assert.Nil(t, f.ContainsCharacter)
}

func TestInterpret_Unparseable(t *testing.T) {
	_, err := Interpret("tell me a joke")
	require.Error(t, err)
	assert.True(t, IsUnparseable(err))
	assert.False(t, filter.IsConflictingFilter(err))
}

func TestInterpret_ShorterThan(t *testing.T) {
	f, err := Interpret("strings shorter than 10")
	require.NoError(t, err)
	require.NotNil(t, f.MaxLength)
	assert.Equal(t, 9, *f.MaxLength, "shorter than 10 is exclusive: max_length = 9")
}

func TestInterpret_ConflictingBounds(t *testing.T) {
	// longer than 10 → min 11; shorter than 5 → max 4
	_, err := Interpret("longer than 10 and shorter than 5")
	require.Error(t, err)
	assert.True(t, filter.IsConflictingFilter(err), "conflicting bounds must be distinct from unparseable")
	assert.False(t, IsUnparseable(err))
}

func TestInterpret_ContainingTheLetter(t *testing.T) {
	f, err := Interpret("strings containing the letter Z")
	require.NoError(t, err)
	require.NotNil(t, f.ContainsCharacter)
	assert.Equal(t, "z", *f.ContainsCharacter, "letter is case-folded")
}

func TestInterpret_ContainingTheLetterRejectsWords(t *testing.T) {
	// "ab" is not a single letter; the pattern must not fire. With no other
	// pattern present the query is unparseable.
	_, err := Interpret("containing the letter ab")
	require.Error(t, err)
	assert.True(t, IsUnparseable(err))
}

func TestInterpret_FirstVowelHeuristic(t *testing.T) {
	// Fixed heuristic: always 'a', regardless of any actual first vowel.
	f, err := Interpret("strings with their first vowel")
	require.NoError(t, err)
	require.NotNil(t, f.ContainsCharacter)
	assert.Equal(t, "a", *f.ContainsCharacter)
}

func TestInterpret_CaseInsensitive(t *testing.T) {
	f, err := Interpret("A SINGLE WORD PALINDROME LONGER THAN 3")
	require.NoError(t, err)
	require.NotNil(t, f.WordCount)
	require.NotNil(t, f.IsPalindrome)
	require.NotNil(t, f.MinLength)
	assert.Equal(t, 4, *f.MinLength)
}

func TestInterpret_Palindromic(t *testing.T) {
	f, err := Interpret("anything palindromic")
	require.NoError(t, err)
	require.NotNil(t, f.IsPalindrome)
	assert.True(t, *f.IsPalindrome)
}

func TestInterpret_OutputCompilesCleanly(t *testing.T) {
	// Interpreter output and direct structured filters converge on the same
	// compiler; a derived filter must compile without further massaging.
	f, err := Interpret("single word strings longer than 2 containing the letter q")
	require.NoError(t, err)

	c, err := filter.Compile(f)
	require.NoError(t, err)

	applied := c.Applied()
	assert.Equal(t, int64(1), applied["word_count"])
	assert.Equal(t, int64(3), applied["min_length"])
	assert.Equal(t, "q", applied["contains_character"])
}
