package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/biovital365/mandala-api/internal/domain/interpretation"
)

// Palette, shared with the PDF report.
var (
	colorAccent = lipgloss.Color("#7f13ec")
	colorGold   = lipgloss.Color("#f4c025")
	colorMuted  = lipgloss.Color("#8a8aa0")
)

type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	number lipgloss.Style
	muted  lipgloss.Style
	box    lipgloss.Style
}

// newStyles builds styles for out; color is dropped when out is not a terminal.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorAccent),
		label:  r.NewStyle().Width(18),
		number: r.NewStyle().Bold(true).Foreground(colorGold),
		muted:  r.NewStyle().Foreground(colorMuted),
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1),
	}
}

func (s styles) renderMap(reading *interpretation.Reading) string {
	var b strings.Builder
	b.WriteString(s.title.Render(reading.Subject.FullName))
	b.WriteString("\n")
	b.WriteString(s.muted.Render(fmt.Sprintf("born %s, as of %d", reading.Subject.BirthDate, reading.Subject.AsOfYear)))
	b.WriteString("\n\n")
	for _, pr := range reading.Pillars {
		b.WriteString(s.label.Render(pr.Title))
		b.WriteString(s.number.Render(fmt.Sprint(pr.Number)))
		b.WriteString("  ")
		b.WriteString(s.muted.Render(pr.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(reading.Synthesis)
	return s.box.Render(b.String()) + "\n"
}

func (s styles) renderInterpretation(interp interpretation.Interpretation, steps string) string {
	var b strings.Builder
	b.WriteString(s.title.Render(interp.Title))
	b.WriteString("  ")
	b.WriteString(s.number.Render(fmt.Sprint(interp.Number)))
	b.WriteString("\n")
	b.WriteString(s.muted.Render(interp.Subtitle))
	b.WriteString("\n\n")
	b.WriteString(interp.Description)
	b.WriteString("\n\n")
	b.WriteString("Essence: " + interp.Essence + "\n")
	b.WriteString("Challenges: " + strings.Join(interp.Challenges, ", ") + "\n")
	b.WriteString("Gift: " + interp.Gift)
	if steps != "" {
		b.WriteString("\n\n")
		b.WriteString(s.muted.Render(steps))
	}
	return s.box.Render(b.String()) + "\n"
}
