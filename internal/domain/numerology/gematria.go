package numerology

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// letterValues is the Pythagorean table. 'ñ' is an explicit entry so that it
// is valued before any diacritic stripping is attempted.
var letterValues = map[rune]int{
	'a': 1, 'j': 1, 's': 1,
	'b': 2, 'k': 2, 't': 2,
	'c': 3, 'l': 3, 'u': 3,
	'd': 4, 'm': 4, 'v': 4,
	'e': 5, 'n': 5, 'w': 5, 'ñ': 5,
	'f': 6, 'o': 6, 'x': 6,
	'g': 7, 'p': 7, 'y': 7,
	'h': 8, 'q': 8, 'z': 8,
	'i': 9, 'r': 9,
}

// LetterValue is one mapped letter of a name and the value it contributed.
type LetterValue struct {
	Letter rune
	Value  int
}

// Gematria is the letter-by-letter breakdown of a gematria sum.
type Gematria struct {
	Letters []LetterValue
	Total   int
}

// String renders the breakdown as "a1 n5 a1 = 7".
func (g Gematria) String() string {
	if len(g.Letters) == 0 {
		return "0"
	}
	parts := make([]string, len(g.Letters))
	for i, lv := range g.Letters {
		parts[i] = fmt.Sprintf("%c%d", lv.Letter, lv.Value)
	}
	return fmt.Sprintf("%s = %d", strings.Join(parts, " "), g.Total)
}

// GematriaValue returns the unreduced sum of letter values in text.
// Characters outside the table contribute nothing.
func GematriaValue(text string) int {
	return GematriaTrace(text).Total
}

// GematriaTrace lowercases text and values each rune. Runes found in the
// table are taken as-is; any other rune is decomposed (NFD) and its base
// letters are valued with combining marks dropped, so "é" counts as "e".
//
// Lowercasing maps one rune to one letter. Full case folding is not used
// because it expands "ß" and ligatures such as "ﬁ" into several letters,
// which are worth nothing here.
func GematriaTrace(text string) Gematria {
	lowered := cases.Lower(language.Und).String(text)

	var g Gematria
	for _, r := range lowered {
		if v, ok := letterValues[r]; ok {
			g.add(r, v)
			continue
		}
		for _, base := range norm.NFD.String(string(r)) {
			if unicode.Is(unicode.Mn, base) {
				continue
			}
			if v, ok := letterValues[base]; ok {
				g.add(base, v)
			}
		}
	}
	return g
}

// HasMappableLetters reports whether text contains at least one letter
// that contributes to its gematria value.
func HasMappableLetters(text string) bool {
	return len(GematriaTrace(text).Letters) > 0
}

func (g *Gematria) add(r rune, v int) {
	g.Letters = append(g.Letters, LetterValue{Letter: r, Value: v})
	g.Total += v
}
