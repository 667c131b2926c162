package numerology

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Calculate(t *testing.T) {
	t.Parallel()

	fixedNow := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	svc := NewService(func() time.Time { return fixedNow })

	t.Run("stamps the clock year", func(t *testing.T) {
		subject, m, err := svc.Calculate("  Ana   María ", BirthDate{Year: 1990, Month: 5, Day: 12})
		require.NoError(t, err)

		assert.Equal(t, "Ana María", subject.FullName)
		assert.Equal(t, 2025, subject.AsOfYear)
		assert.Equal(t, 8, m.PersonalYear)
		assert.Equal(t, GenerateFullMap("Ana María", subject.BirthDate, 2025), m)
	})

	t.Run("rejects unmappable name", func(t *testing.T) {
		_, _, err := svc.Calculate("1234", BirthDate{Year: 1990, Month: 5, Day: 12})
		assert.ErrorIs(t, err, ErrUnmappableName)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, _, err := svc.Calculate("   ", BirthDate{Year: 1990, Month: 5, Day: 12})
		assert.ErrorIs(t, err, ErrUnmappableName)
	})

	t.Run("rejects hand-built invalid dates", func(t *testing.T) {
		for _, dob := range []BirthDate{
			{Year: 1990, Month: 2, Day: 30},
			{Year: 1990, Month: 14, Day: 45},
			{Year: 1990, Month: 0, Day: 1},
			{Year: -1, Month: 5, Day: 12},
		} {
			_, _, err := svc.Calculate("Ana", dob)
			assert.ErrorIs(t, err, ErrInvalidDate, "%+v", dob)
		}
	})
}

func TestService_Recompute(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)
	subject := Subject{FullName: "Ana", BirthDate: BirthDate{Year: 1990, Month: 5, Day: 12}, AsOfYear: 2025}

	assert.Equal(t, GenerateFullMap("Ana", subject.BirthDate, 2025), svc.Recompute(subject))
}
