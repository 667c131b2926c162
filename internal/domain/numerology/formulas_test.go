package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, year, month, day int) BirthDate {
	t.Helper()
	d, err := NewBirthDate(year, month, day)
	require.NoError(t, err)
	return d
}

func TestFormulas(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		dob         [3]int
		currentYear int
		fullName    string
		expected    Map
	}{
		{
			name:        "reference date",
			dob:         [3]int{1990, 5, 12},
			currentYear: 2025,
			fullName:    "Ana",
			expected: Map{
				Essence:       3,
				LifePath:      9,
				NameVibration: 7,
				PersonalYear:  8,
				DivineGift:    9,
			},
		},
		{
			name:        "master day and month",
			dob:         [3]int{1985, 11, 29},
			currentYear: 2026,
			fullName:    "Ñoño",
			expected: Map{
				Essence:       11,
				LifePath:      9,
				NameVibration: 22,
				PersonalYear:  5,
				DivineGift:    4,
			},
		},
		{
			name:        "master life path and zero gift",
			dob:         [3]int{2000, 9, 11},
			currentYear: 2025,
			fullName:    "",
			expected: Map{
				Essence:       11,
				LifePath:      22,
				NameVibration: 0,
				PersonalYear:  11,
				DivineGift:    0,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dob := mustDate(t, tc.dob[0], tc.dob[1], tc.dob[2])

			assert.Equal(t, tc.expected.Essence, Essence(dob))
			assert.Equal(t, tc.expected.LifePath, LifePath(dob))
			assert.Equal(t, tc.expected.NameVibration, NameVibration(tc.fullName))
			assert.Equal(t, tc.expected.PersonalYear, PersonalYear(dob, tc.currentYear))
			assert.Equal(t, tc.expected.DivineGift, DivineGift(dob))
			assert.Equal(t, tc.expected, GenerateFullMap(tc.fullName, dob, tc.currentYear))
		})
	}
}

func TestGenerateFullMap_Deterministic(t *testing.T) {
	t.Parallel()

	dob := mustDate(t, 1990, 5, 12)
	first := GenerateFullMap("María José Núñez", dob, 2025)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, GenerateFullMap("María José Núñez", dob, 2025))
	}
}

func TestMap_Value(t *testing.T) {
	t.Parallel()

	m := Map{Essence: 1, LifePath: 2, NameVibration: 3, PersonalYear: 4, DivineGift: 5}
	for i, p := range Pillars {
		v, ok := m.Value(p)
		assert.True(t, ok)
		assert.Equal(t, i+1, v)
	}

	_, ok := m.Value(Pillar("moon"))
	assert.False(t, ok)
}

func TestExplain(t *testing.T) {
	t.Parallel()

	subject := Subject{FullName: "Ana", BirthDate: mustDate(t, 1990, 5, 12), AsOfYear: 2025}
	m := Derive(subject)

	for _, p := range Pillars {
		trace, err := Explain(p, subject)
		require.NoError(t, err)
		want, _ := m.Value(p)
		assert.Equal(t, want, trace.Result(), "pillar %s", p)
		assert.Equal(t, p, trace.Pillar)
	}

	lifePath, err := Explain(PillarLifePath, subject)
	require.NoError(t, err)
	require.Len(t, lifePath.Components, 3)
	assert.Equal(t, []int{12, 3}, lifePath.Components[0].Reduction.Chain)
	assert.Equal(t, []int{5}, lifePath.Components[1].Reduction.Chain)
	assert.Equal(t, []int{1990, 19, 10, 1}, lifePath.Components[2].Reduction.Chain)
	assert.Equal(t, 9, lifePath.Sum())
	assert.Equal(t, []int{9}, lifePath.Final.Chain)

	personalYear, err := Explain(PillarPersonalYear, subject)
	require.NoError(t, err)
	assert.Equal(t, "current year", personalYear.Components[2].Label)
	assert.Equal(t, []int{2025, 9}, personalYear.Components[2].Reduction.Chain)
	assert.Equal(t, []int{17, 8}, personalYear.Final.Chain)

	name, err := Explain(PillarNameVibration, subject)
	require.NoError(t, err)
	require.NotNil(t, name.Gematria)
	assert.Equal(t, 7, name.Gematria.Total)

	gift, err := Explain(PillarDivineGift, subject)
	require.NoError(t, err)
	assert.Equal(t, []int{90, 9}, gift.Final.Chain)

	_, err = Explain(Pillar("moon"), subject)
	assert.ErrorIs(t, err, ErrUnknownPillar)
}

func TestParsePillar(t *testing.T) {
	t.Parallel()

	testCases := map[string]Pillar{
		"essence":       PillarEssence,
		"lifePath":      PillarLifePath,
		"NAMEVIBRATION": PillarNameVibration,
		"personal-year": PillarPersonalYear,
		"divineGift":    PillarDivineGift,
		"esencia":       PillarEssence,
		"mision":        PillarLifePath,
		"nombre":        PillarNameVibration,
		"ano":           PillarPersonalYear,
		"regalo":        PillarDivineGift,
	}
	for input, want := range testCases {
		got, err := ParsePillar(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
		assert.True(t, got.Valid())
	}

	_, err := ParsePillar("moon")
	assert.ErrorIs(t, err, ErrUnknownPillar)
	assert.False(t, Pillar("moon").Valid())
}
