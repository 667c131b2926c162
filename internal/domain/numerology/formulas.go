package numerology

import "fmt"

// Map holds the five pillar values computed for one subject.
// Each value is 1..9 or a master number, except a name vibration of 0 for a
// name without mappable letters.
type Map struct {
	Essence       int `json:"essence"`
	LifePath      int `json:"lifePath"`
	NameVibration int `json:"nameVibration"`
	PersonalYear  int `json:"personalYear"`
	DivineGift    int `json:"divineGift"`
}

// Value returns the number stored for pillar p.
func (m Map) Value(p Pillar) (int, bool) {
	switch p {
	case PillarEssence:
		return m.Essence, true
	case PillarLifePath:
		return m.LifePath, true
	case PillarNameVibration:
		return m.NameVibration, true
	case PillarPersonalYear:
		return m.PersonalYear, true
	case PillarDivineGift:
		return m.DivineGift, true
	}
	return 0, false
}

// Subject is the complete input of a map: who, when born, and the year the
// Personal Year pillar is evaluated for.
type Subject struct {
	FullName  string    `json:"full_name"`
	BirthDate BirthDate `json:"birth_date"`
	AsOfYear  int       `json:"as_of_year"`
}

// Component is one reduced operand of a formula, such as the day of birth.
type Component struct {
	Label     string
	Reduction Reduction
}

// Trace is the arithmetic a formula performed. Components are reduced
// independently; when there is more than one, their results are summed and
// the sum is reduced into Final. Gematria is set only for the name pillar.
type Trace struct {
	Pillar     Pillar
	Gematria   *Gematria
	Components []Component
	Final      Reduction
}

// Result is the pillar value the trace produced.
func (t Trace) Result() int {
	return t.Final.Result()
}

// Sum returns the total of the component results.
func (t Trace) Sum() int {
	sum := 0
	for _, c := range t.Components {
		sum += c.Reduction.Result()
	}
	return sum
}

// Essence is the reduced day of birth.
func Essence(dob BirthDate) int {
	return essenceTrace(dob).Result()
}

// LifePath reduces day, month and year separately, then reduces their sum.
func LifePath(dob BirthDate) int {
	return lifePathTrace(dob).Result()
}

// NameVibration is the reduced gematria value of the full name.
func NameVibration(name string) int {
	return nameVibrationTrace(name).Result()
}

// PersonalYear has the shape of LifePath with currentYear in place of the birth year.
func PersonalYear(dob BirthDate, currentYear int) int {
	return personalYearTrace(dob, currentYear).Result()
}

// DivineGift is the reduced value of the last two digits of the birth year.
func DivineGift(dob BirthDate) int {
	return divineGiftTrace(dob).Result()
}

// GenerateFullMap evaluates all five formulas against the same inputs.
// It is the only way a Map should be built.
func GenerateFullMap(name string, dob BirthDate, currentYear int) Map {
	return Map{
		Essence:       Essence(dob),
		LifePath:      LifePath(dob),
		NameVibration: NameVibration(name),
		PersonalYear:  PersonalYear(dob, currentYear),
		DivineGift:    DivineGift(dob),
	}
}

// Derive is GenerateFullMap over a Subject.
func Derive(s Subject) Map {
	return GenerateFullMap(s.FullName, s.BirthDate, s.AsOfYear)
}

// Explain returns the trace of pillar p for subject s.
func Explain(p Pillar, s Subject) (Trace, error) {
	switch p {
	case PillarEssence:
		return essenceTrace(s.BirthDate), nil
	case PillarLifePath:
		return lifePathTrace(s.BirthDate), nil
	case PillarNameVibration:
		return nameVibrationTrace(s.FullName), nil
	case PillarPersonalYear:
		return personalYearTrace(s.BirthDate, s.AsOfYear), nil
	case PillarDivineGift:
		return divineGiftTrace(s.BirthDate), nil
	}
	return Trace{}, fmt.Errorf("%w: %q", ErrUnknownPillar, string(p))
}

func essenceTrace(dob BirthDate) Trace {
	day := ReduceTrace(dob.Day, true)
	return Trace{
		Pillar:     PillarEssence,
		Components: []Component{{Label: "day", Reduction: day}},
		Final:      day,
	}
}

func lifePathTrace(dob BirthDate) Trace {
	return dateSumTrace(PillarLifePath, dob, Component{
		Label:     "year",
		Reduction: ReduceTrace(dob.Year, true),
	})
}

func personalYearTrace(dob BirthDate, currentYear int) Trace {
	return dateSumTrace(PillarPersonalYear, dob, Component{
		Label:     "current year",
		Reduction: ReduceTrace(currentYear, true),
	})
}

func dateSumTrace(p Pillar, dob BirthDate, year Component) Trace {
	t := Trace{
		Pillar: p,
		Components: []Component{
			{Label: "day", Reduction: ReduceTrace(dob.Day, true)},
			{Label: "month", Reduction: ReduceTrace(dob.Month, true)},
			year,
		},
	}
	t.Final = ReduceTrace(t.Sum(), true)
	return t
}

func nameVibrationTrace(name string) Trace {
	g := GematriaTrace(name)
	return Trace{
		Pillar:   PillarNameVibration,
		Gematria: &g,
		Final:    ReduceTrace(g.Total, true),
	}
}

func divineGiftTrace(dob BirthDate) Trace {
	// The component keeps the full year; Final starts from its last two digits.
	return Trace{
		Pillar:     PillarDivineGift,
		Components: []Component{{Label: "year", Reduction: Reduction{Chain: []int{dob.Year}}}},
		Final:      ReduceTrace(dob.Year%100, true),
	}
}
