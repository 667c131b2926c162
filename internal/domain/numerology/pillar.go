package numerology

import (
	"fmt"
	"strings"
)

// Pillar identifies one of the five values in a Map.
type Pillar string

const (
	// PillarEssence is the reduced day of birth.
	PillarEssence Pillar = "essence"
	// PillarLifePath is the reduced sum of day, month and birth year.
	PillarLifePath Pillar = "lifePath"
	// PillarNameVibration is the reduced gematria value of the full name.
	PillarNameVibration Pillar = "nameVibration"
	// PillarPersonalYear is the reduced sum of day, month and the evaluation year.
	PillarPersonalYear Pillar = "personalYear"
	// PillarDivineGift is the reduced last two digits of the birth year.
	PillarDivineGift Pillar = "divineGift"
)

// Pillars lists every pillar in presentation order.
var Pillars = []Pillar{
	PillarEssence,
	PillarLifePath,
	PillarNameVibration,
	PillarPersonalYear,
	PillarDivineGift,
}

// pillarAliases maps lowercase spellings, including the identifiers used by
// earlier clients, to their pillar.
var pillarAliases = map[string]Pillar{
	"essence":       PillarEssence,
	"lifepath":      PillarLifePath,
	"life-path":     PillarLifePath,
	"namevibration": PillarNameVibration,
	"name":          PillarNameVibration,
	"personalyear":  PillarPersonalYear,
	"personal-year": PillarPersonalYear,
	"divinegift":    PillarDivineGift,
	"gift":          PillarDivineGift,

	"esencia": PillarEssence,
	"mision":  PillarLifePath,
	"nombre":  PillarNameVibration,
	"ano":     PillarPersonalYear,
	"regalo":  PillarDivineGift,
}

// ParsePillar resolves a pillar identifier case-insensitively.
func ParsePillar(s string) (Pillar, error) {
	p, ok := pillarAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPillar, s)
	}
	return p, nil
}

// Valid reports whether p is one of the five pillars.
func (p Pillar) Valid() bool {
	switch p {
	case PillarEssence, PillarLifePath, PillarNameVibration, PillarPersonalYear, PillarDivineGift:
		return true
	}
	return false
}

func (p Pillar) String() string {
	return string(p)
}
