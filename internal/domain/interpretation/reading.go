package interpretation

import (
	"fmt"

	"github.com/biovital365/mandala-api/internal/domain/numerology"
)

// PillarReading is one pillar's interpretation plus the steps that produced
// its number.
type PillarReading struct {
	Interpretation
	Steps string `json:"steps"`
}

// Reading is the full study of a subject: every pillar in display order and
// the essence/life path synthesis.
type Reading struct {
	Subject       numerology.Subject `json:"subject"`
	Map           numerology.Map     `json:"map"`
	Pillars       []PillarReading    `json:"pillars"`
	Synthesis     string             `json:"synthesis"`
	SynthesisKind SynthesisKind      `json:"synthesis_kind"`

	// Fallbacks lists pillars whose number had no catalog entry.
	Fallbacks []numerology.Pillar `json:"-"`
}

// Pillar returns the reading for p, if present.
func (r Reading) Pillar(p numerology.Pillar) (PillarReading, bool) {
	for _, pr := range r.Pillars {
		if pr.Pillar == p {
			return pr, true
		}
	}
	return PillarReading{}, false
}

// ExplainPillar interprets one pillar of m and attaches its steps.
// The bool is false when the number fell back to entry 1.
func (r *Resolver) ExplainPillar(p numerology.Pillar, m numerology.Map, s numerology.Subject) (PillarReading, bool, error) {
	n, ok := m.Value(p)
	if !ok {
		return PillarReading{}, false, fmt.Errorf("%w: %q", numerology.ErrUnknownPillar, p)
	}
	steps, err := r.CalculationSteps(p, m, s)
	if err != nil {
		return PillarReading{}, false, err
	}
	interp, inTable := r.Interpret(p, n)
	return PillarReading{Interpretation: interp, Steps: steps}, inTable, nil
}

// Read builds the full Reading for subject s and its map m.
func (r *Resolver) Read(s numerology.Subject, m numerology.Map) (Reading, error) {
	reading := Reading{
		Subject:       s,
		Map:           m,
		Pillars:       make([]PillarReading, 0, len(numerology.Pillars)),
		Synthesis:     r.Synthesize(m),
		SynthesisKind: Classify(m),
	}
	for _, p := range numerology.Pillars {
		pr, inTable, err := r.ExplainPillar(p, m, s)
		if err != nil {
			return Reading{}, err
		}
		if !inTable {
			reading.Fallbacks = append(reading.Fallbacks, p)
		}
		reading.Pillars = append(reading.Pillars, pr)
	}
	return reading, nil
}
