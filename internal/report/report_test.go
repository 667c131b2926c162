package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biovital365/mandala-api/internal/config"
	"github.com/biovital365/mandala-api/internal/domain/interpretation"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
)

func testReading(t *testing.T, name string, dob numerology.BirthDate) *interpretation.Reading {
	t.Helper()
	subject := numerology.Subject{FullName: name, BirthDate: dob, AsOfYear: 2025}
	reading, err := interpretation.Default().Read(subject, numerology.Derive(subject))
	require.NoError(t, err)
	return &reading
}

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(config.ReportConfig{BrandName: "BioVital 365", Timezone: "America/Bogota"})
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC) }
	return r
}

func TestRender(t *testing.T) {
	t.Parallel()

	r := testRenderer(t)
	tests := []struct {
		name    string
		reading *interpretation.Reading
	}{
		{"accented name", testReading(t, "Ana María", numerology.BirthDate{Year: 1990, Month: 5, Day: 12})},
		{"enye and master number", testReading(t, "Ñoño", numerology.BirthDate{Year: 1985, Month: 11, Day: 29})},
		{"fallback divine gift", testReading(t, "Ana", numerology.BirthDate{Year: 2000, Month: 9, Day: 11})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pdf, err := r.build(tc.reading)
			require.NoError(t, err)
			assert.Equal(t, PageCount, pdf.PageCount())

			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, tc.reading))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		})
	}
}

func TestRender_IncompleteReading(t *testing.T) {
	t.Parallel()

	r := testRenderer(t)
	reading := testReading(t, "Ana", numerology.BirthDate{Year: 1990, Month: 5, Day: 12})
	reading.Pillars = reading.Pillars[:4]

	var buf bytes.Buffer
	assert.ErrorIs(t, r.Render(&buf, reading), ErrIncompleteReading)
	assert.ErrorIs(t, r.Render(&buf, nil), ErrIncompleteReading)
	assert.Zero(t, buf.Len())
}

func TestNewRenderer_InvalidTimezone(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer(config.ReportConfig{BrandName: "BioVital 365", Timezone: "Mars/Olympus"})
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Ana María", "Numerology_Study_Ana_María.pdf"},
		{"  José   de la  Cruz ", "Numerology_Study_José_de_la_Cruz.pdf"},
		{`Ana "AJ" Ruiz/Gil`, "Numerology_Study_Ana_AJ_RuizGil.pdf"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Filename(tc.in), tc.in)
	}
}
