package report

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/biovital365/mandala-api/internal/config"
	"github.com/biovital365/mandala-api/internal/domain/interpretation"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
)

// PageCount is the number of pages in every rendered report.
const PageCount = 2 + 5

// ContentType is the media type of a rendered report.
const ContentType = "application/pdf"

// ErrIncompleteReading is returned when a reading lacks one of the five pillars.
var ErrIncompleteReading = errors.New("reading does not cover every pillar")

// Palette, RGB.
var (
	colorInk    = [3]int{18, 14, 38}
	colorAccent = [3]int{127, 19, 236}
	colorGold   = [3]int{244, 192, 37}
	colorMuted  = [3]int{110, 110, 125}
)

const closingNote = "This report is a spiritual guide based on sacred vibrational frequencies."

// Renderer writes readings as A4 PDF documents.
type Renderer struct {
	brand    string
	location *time.Location
	now      func() time.Time
}

// NewRenderer creates a Renderer from the report configuration.
func NewRenderer(cfg config.ReportConfig) (*Renderer, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("report: invalid timezone %q: %w", cfg.Timezone, err)
	}
	return &Renderer{brand: cfg.BrandName, location: loc, now: time.Now}, nil
}

// Render writes reading to w as a PDF.
func (r *Renderer) Render(w io.Writer, reading *interpretation.Reading) error {
	pdf, err := r.build(reading)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: write pdf: %w", err)
	}
	return nil
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename returns the download name for a subject's report,
// "Numerology_Study_Ana_Maria.pdf" for "Ana Maria".
func Filename(fullName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"':
			return -1
		}
		return r
	}, strings.TrimSpace(fullName))
	return "Numerology_Study_" + whitespace.ReplaceAllString(name, "_") + ".pdf"
}

// page holds the document and its text encoder while pages are laid out.
type page struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// Core fonts are cp1252; runes it lacks are spelled out first.
var asciiFallbacks = strings.NewReplacer("→", "->", "•", "-")

func (r *Renderer) build(reading *interpretation.Reading) (*fpdf.Fpdf, error) {
	if reading == nil {
		return nil, ErrIncompleteReading
	}
	pillars := make([]interpretation.PillarReading, 0, len(numerology.Pillars))
	for _, p := range numerology.Pillars {
		pr, ok := reading.Pillar(p)
		if !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrIncompleteReading, p)
		}
		pillars = append(pillars, pr)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetCreationDate(r.now())
	pdf.SetTitle("Numerology Study - "+reading.Subject.FullName, true)
	pdf.SetAuthor(r.brand, true)
	pdf.SetCreator(r.brand, true)
	pdf.AliasNbPages("")

	pg := &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pg.font("", 8, colorMuted)
		pdf.CellFormat(0, 10, pg.text(r.brand+" - page "+strconv.Itoa(pdf.PageNo())+"/{nb}"), "", 0, "C", false, 0, "")
	})

	r.cover(pg, reading)
	for _, pr := range pillars {
		pillarPage(pg, pr)
	}
	synthesisPage(pg, reading)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("report: layout: %w", err)
	}
	return pdf, nil
}

func (p *page) text(s string) string {
	return p.tr(asciiFallbacks.Replace(s))
}

func (p *page) font(style string, size float64, color [3]int) {
	p.pdf.SetFont("Helvetica", style, size)
	p.pdf.SetTextColor(color[0], color[1], color[2])
}

func (p *page) banner(title string) {
	p.pdf.SetFillColor(colorInk[0], colorInk[1], colorInk[2])
	p.pdf.Rect(0, 0, 210, 28, "F")
	p.pdf.SetXY(20, 9)
	p.font("B", 16, [3]int{255, 255, 255})
	p.pdf.CellFormat(0, 10, p.text(title), "", 1, "L", false, 0, "")
	p.pdf.SetY(38)
}

func (p *page) heading(s string) {
	p.pdf.Ln(4)
	p.font("B", 11, colorAccent)
	p.pdf.CellFormat(0, 7, p.text(strings.ToUpper(s)), "", 1, "L", false, 0, "")
}

func (p *page) paragraph(s string) {
	p.font("", 11, colorInk)
	p.pdf.MultiCell(0, 6, p.text(s), "", "L", false)
}

func (r *Renderer) cover(p *page, reading *interpretation.Reading) {
	pdf := p.pdf
	pdf.AddPage()
	p.banner("Numerological Mandala")

	p.font("", 10, colorMuted)
	pdf.CellFormat(0, 6, p.text(r.brand+" • Destiny Map"), "", 0, "L", false, 0, "")
	reportDate := r.now().In(r.location).Format("2006-01-02")
	pdf.CellFormat(0, 6, p.text("Report date: "+reportDate), "", 1, "R", false, 0, "")

	pdf.Ln(30)
	p.font("B", 14, colorInk)
	pdf.CellFormat(0, 10, p.text("Personalized report for:"), "", 1, "C", false, 0, "")
	p.font("B", 28, colorAccent)
	pdf.MultiCell(0, 14, p.text(reading.Subject.FullName), "", "C", false)
	p.font("", 12, colorMuted)
	pdf.CellFormat(0, 8, p.text("Date of birth: "+reading.Subject.BirthDate.String()), "", 1, "C", false, 0, "")

	pdf.Ln(20)
	for _, pr := range reading.Pillars {
		p.font("B", 12, colorInk)
		pdf.CellFormat(120, 10, p.text(pr.Title), "B", 0, "L", false, 0, "")
		p.font("B", 16, colorGold)
		pdf.CellFormat(0, 10, strconv.Itoa(pr.Number), "B", 1, "R", false, 0, "")
	}
}

func pillarPage(p *page, pr interpretation.PillarReading) {
	pdf := p.pdf
	pdf.AddPage()
	p.banner(pr.Title)

	p.font("B", 48, colorGold)
	pdf.CellFormat(0, 22, strconv.Itoa(pr.Number), "", 1, "C", false, 0, "")
	p.font("I", 14, colorAccent)
	pdf.CellFormat(0, 8, p.text(pr.Subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	p.paragraph(pr.Description)

	p.heading("Essence")
	p.paragraph(pr.Essence)

	if len(pr.Challenges) > 0 {
		p.heading("Challenges")
		for _, c := range pr.Challenges {
			p.paragraph("- " + c)
		}
	}

	p.heading("Gift")
	p.paragraph(pr.Gift)

	p.heading("How it was calculated")
	p.font("", 10, colorMuted)
	pdf.MultiCell(0, 5, p.text(pr.Steps), "", "L", false)
}

func synthesisPage(p *page, reading *interpretation.Reading) {
	pdf := p.pdf
	pdf.AddPage()
	p.banner("Synthesis")

	p.font("B", 12, colorAccent)
	pdf.CellFormat(0, 8, p.text(fmt.Sprintf("Essence %d and Life Mission %d: %s",
		reading.Map.Essence, reading.Map.LifePath, reading.SynthesisKind)), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	p.paragraph(reading.Synthesis)

	pdf.Ln(20)
	p.font("I", 9, colorMuted)
	pdf.MultiCell(0, 5, p.text(closingNote), "", "C", false)
}
