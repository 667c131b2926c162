package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/biovital365/mandala-api/internal/config"
	"github.com/biovital365/mandala-api/internal/domain/interpretation"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
	"github.com/biovital365/mandala-api/internal/report"
)

var errUnknownNumber = errors.New("number has no interpretation")

func newMapCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "map <full-name> <birth-date>",
		Short:   "Compute the five pillars and the synthesis",
		Example: `  mandala map "Ana María" 1990-05-15`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reading, err := c.read(args[0], args[1])
			if err != nil {
				return err
			}
			if c.jsonOut {
				return c.writeJSON(reading)
			}
			_, err = fmt.Fprint(c.out, c.styles.renderMap(reading))
			return err
		},
	}
}

func newPillarCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pillar <pillar> <full-name> <birth-date>",
		Short: "Explain one pillar with its calculation steps",
		Long: `Explain one pillar with its calculation steps.

Pillars: essence, lifePath, nameVibration, personalYear, divineGift.`,
		Example: `  mandala pillar nameVibration "Ana María" 1990-05-15`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := numerology.ParsePillar(args[0])
			if err != nil {
				return err
			}
			reading, err := c.read(args[1], args[2])
			if err != nil {
				return err
			}
			pr, ok := reading.Pillar(p)
			if !ok {
				return fmt.Errorf("%w: %q", numerology.ErrUnknownPillar, args[0])
			}
			if c.jsonOut {
				return c.writeJSON(pr)
			}
			_, err = fmt.Fprint(c.out, c.styles.renderInterpretation(pr.Interpretation, pr.Steps))
			return err
		},
	}
}

func newInterpretCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "interpret <pillar> <number>",
		Short:   "Print the interpretation of a number for a pillar",
		Example: `  mandala interpret lifePath 22`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := numerology.ParsePillar(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || !slices.Contains(interpretation.BaseNumbers, n) {
				return fmt.Errorf("%w: %s", errUnknownNumber, args[1])
			}
			interp, _ := c.resolver.Interpret(p, n)
			if c.jsonOut {
				return c.writeJSON(interp)
			}
			_, err = fmt.Fprint(c.out, c.styles.renderInterpretation(interp, ""))
			return err
		},
	}
}

func newReportCmd(c *cli) *cobra.Command {
	var (
		output string
		cfg    = config.ReportConfig{BrandName: "BioVital365", Timezone: "UTC"}
	)
	cmd := &cobra.Command{
		Use:   "report <full-name> <birth-date>",
		Short: "Write the PDF study for a subject",
		Long: `Write the seven-page PDF study for a subject.

Without --output the file is written to the current directory as
Numerology_Study_<Name>.pdf.`,
		Example: `  mandala report "Ana María" 1990-05-15 -o ana.pdf`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := report.NewRenderer(cfg)
			if err != nil {
				return err
			}
			reading, err := c.read(args[0], args[1])
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				path = report.Filename(reading.Subject.FullName)
			}
			if err := writeReport(renderer, reading, path); err != nil {
				return err
			}
			c.logger.Info("report written", slog.String("path", path))
			_, err = fmt.Fprintln(c.out, c.styles.muted.Render("wrote "+path))
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().StringVar(&cfg.BrandName, "brand", cfg.BrandName, "brand printed on the cover")
	cmd.Flags().StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "IANA timezone for the cover date")
	return cmd
}

// writeReport renders into a sibling temp file and renames it into place so
// a failed render never leaves a truncated PDF behind.
func writeReport(renderer *report.Renderer, reading *interpretation.Reading, path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".mandala-*.pdf")
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = renderer.Render(tmp, reading); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("move report into place: %w", err)
	}
	return nil
}

func (c *cli) writeJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
