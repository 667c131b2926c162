package interpretation

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/biovital365/mandala-api/internal/domain/numerology"
)

// Interpretation is the text bundle for one pillar value.
type Interpretation struct {
	Pillar      numerology.Pillar `json:"pillar"`
	Number      int               `json:"number"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle"`
	Description string            `json:"description"`
	Essence     string            `json:"essence"`
	Challenges  []string          `json:"challenges"`
	Gift        string            `json:"gift"`
}

// Resolver reads interpretations out of a Catalog.
type Resolver struct {
	catalog *Catalog
}

// NewResolver creates a Resolver over a validated catalog.
func NewResolver(c *Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Default returns a Resolver over the embedded catalog.
func Default() *Resolver {
	c, err := DefaultCatalog()
	if err != nil {
		// ALLOW-PANIC: the embedded catalog is compiled in and covered by tests
		panic(fmt.Sprintf("interpretation: embedded catalog: %v", err))
	}
	return NewResolver(c)
}

// Interpret returns the bundle for pillar p and number n.
//
// The base entry is looked up by n; a number outside BaseNumbers gets the
// entry for 1 and ok is false so the caller can report the violation. The
// pillar nuance, or the catalog fallback nuance when the pillar has none for
// n, replaces the base essence.
func (r *Resolver) Interpret(p numerology.Pillar, n int) (Interpretation, bool) {
	base, ok := r.catalog.Numbers[n]
	if !ok {
		base = r.catalog.Numbers[fallbackNumber]
	}

	nuance, found := r.catalog.Nuances[p][n]
	if !found {
		nuance = r.catalog.FallbackNuance
	}

	return Interpretation{
		Pillar:      p,
		Number:      n,
		Title:       r.Title(p),
		Subtitle:    base.Subtitle,
		Description: base.Description,
		Essence:     nuance,
		Challenges:  slices.Clone(base.Challenges),
		Gift:        base.Gift,
	}, ok
}

// Title returns the display title of pillar p.
func (r *Resolver) Title(p numerology.Pillar) string {
	if t, ok := r.catalog.Titles[p]; ok {
		return t
	}
	return r.catalog.DefaultTitle
}

// CalculationSteps renders the arithmetic behind pillar p of map m.
//
// The trace is produced by the same code path that computed the pillar, and
// ErrStepsMismatch is returned if it does not land on m's value, so the trail
// shown can never contradict the number shown next to it.
func (r *Resolver) CalculationSteps(p numerology.Pillar, m numerology.Map, s numerology.Subject) (string, error) {
	trace, err := numerology.Explain(p, s)
	if err != nil {
		return "", err
	}
	want, _ := m.Value(p)
	if trace.Result() != want {
		return "", fmt.Errorf("%w: %s traced %d, map has %d", ErrStepsMismatch, p, trace.Result(), want)
	}
	return renderTrace(trace), nil
}

func renderTrace(t numerology.Trace) string {
	if t.Gematria != nil {
		return t.Gematria.String() + chainTail(t.Final)
	}

	lines := make([]string, 0, len(t.Components)+1)
	for _, c := range t.Components {
		lines = append(lines, c.Label+" "+c.Reduction.String())
	}

	switch {
	case t.Pillar == numerology.PillarDivineGift:
		lines = append(lines, "last two digits "+t.Final.String())
	case len(t.Components) > 1:
		terms := make([]string, len(t.Components))
		for i, c := range t.Components {
			terms[i] = strconv.Itoa(c.Reduction.Result())
		}
		lines = append(lines, strings.Join(terms, " + ")+" = "+t.Final.String())
	}
	return strings.Join(lines, "\n")
}

// chainTail renders the steps after the first element of r, " → 4" for 31 → 4.
func chainTail(r numerology.Reduction) string {
	var b strings.Builder
	for _, v := range r.Chain[1:] {
		b.WriteString(" → ")
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
