package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGematriaValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "repeated letters", input: "AAA", expected: 3},
		{name: "enye counts as n", input: "Ñoño", expected: 22},
		{name: "plain n", input: "Nono", expected: 22},
		{name: "accent stripped", input: "José", expected: 13},
		{name: "unaccented", input: "Jose", expected: 13},
		{name: "spaces ignored", input: "Ana María", expected: 31},
		{name: "digits and punctuation ignored", input: "123 !?-", expected: 0},
		{name: "decomposed enye", input: "n\u0303", expected: 5},
		{name: "mixed case", input: "aNa", expected: 7},
		{name: "sharp s is not expanded", input: "Strauß", expected: 16},
		{name: "capital sharp s is not expanded", input: "STRAUẞ", expected: 16},
		{name: "ligature is not expanded", input: "ﬁ", expected: 0},
		{name: "dotted capital i", input: "İ", expected: 9},
		{name: "capital enye", input: "ÑOÑO", expected: 22},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GematriaValue(tc.input))
		})
	}
}

func TestGematriaTrace(t *testing.T) {
	t.Parallel()

	g := GematriaTrace("Ána")
	assert.Equal(t, []LetterValue{{'a', 1}, {'n', 5}, {'a', 1}}, g.Letters)
	assert.Equal(t, 7, g.Total)
	assert.Equal(t, "a1 n5 a1 = 7", g.String())

	enye := GematriaTrace("Ñ")
	assert.Equal(t, []LetterValue{{'ñ', 5}}, enye.Letters, "ñ is valued as its own table entry")

	assert.Equal(t, "0", GematriaTrace("").String())
}

func TestHasMappableLetters(t *testing.T) {
	t.Parallel()

	assert.True(t, HasMappableLetters("Ana"))
	assert.False(t, HasMappableLetters(""))
	assert.False(t, HasMappableLetters("  42 "))
}
