package interpretation

import (
	"strconv"
	"strings"

	"github.com/biovital365/mandala-api/internal/domain/numerology"
)

// SynthesisKind classifies how essence and life path relate.
type SynthesisKind string

const (
	// SynthesisEqual means essence and life path are the same number.
	SynthesisEqual SynthesisKind = "equal"
	// SynthesisHarmonic means their sum is even.
	SynthesisHarmonic SynthesisKind = "harmonic"
	// SynthesisContrast means their sum is odd.
	SynthesisContrast SynthesisKind = "contrast"
)

// Classify picks the synthesis branch for m from essence and life path alone.
func Classify(m numerology.Map) SynthesisKind {
	switch {
	case m.Essence == m.LifePath:
		return SynthesisEqual
	case (m.Essence+m.LifePath)%2 == 0:
		return SynthesisHarmonic
	default:
		return SynthesisContrast
	}
}

// Synthesize returns the narrative for m's synthesis branch with the
// essence and life path numbers filled in.
func (r *Resolver) Synthesize(m numerology.Map) string {
	var tmpl string
	switch Classify(m) {
	case SynthesisEqual:
		tmpl = r.catalog.Synthesis.Equal
	case SynthesisHarmonic:
		tmpl = r.catalog.Synthesis.Harmonic
	default:
		tmpl = r.catalog.Synthesis.Contrast
	}

	return strings.NewReplacer(
		"{essence}", strconv.Itoa(m.Essence),
		"{lifePath}", strconv.Itoa(m.LifePath),
	).Replace(tmpl)
}
