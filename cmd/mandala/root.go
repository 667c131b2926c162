package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/biovital365/mandala-api/internal/domain/interpretation"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
	"github.com/biovital365/mandala-api/internal/platform/logger"
)

// cli carries what every subcommand shares.
type cli struct {
	out      io.Writer
	errOut   io.Writer
	now      func() time.Time
	styles   styles
	resolver *interpretation.Resolver

	year     int
	jsonOut  bool
	logLevel string
	logger   *slog.Logger
}

func newRootCmd(out, errOut io.Writer, now func() time.Time) *cobra.Command {
	c := &cli{out: out, errOut: errOut, now: now}

	root := &cobra.Command{
		Use:   "mandala",
		Short: "Numerology readings from a name and a birth date",
		Long: `mandala computes the five pillars of a numerological mandala:
essence, life path, name vibration, personal year and divine gift.

Birth dates are YYYY-MM-DD. Names may contain accents and ñ.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(c.logLevel)
			if err != nil {
				return err
			}
			c.logger = logger.New(c.errOut, level)
			c.styles = newStyles(c.out)
			c.resolver = interpretation.Default()
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().IntVar(&c.year, "year", 0, "evaluation year for the personal year (default: current year)")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "print JSON instead of styled text")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newMapCmd(c),
		newPillarCmd(c),
		newInterpretCmd(c),
		newReportCmd(c),
	)
	return root
}

// engine returns the calculator, pinned to --year when it is set.
func (c *cli) engine() numerology.Service {
	if c.year > 0 {
		year := c.year
		return numerology.NewService(func() time.Time {
			return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		})
	}
	return numerology.NewService(c.now)
}

// read computes and interprets the reading for a name and birth date argument.
func (c *cli) read(name, birthDate string) (*interpretation.Reading, error) {
	dob, err := numerology.ParseBirthDate(birthDate)
	if err != nil {
		return nil, err
	}
	subject, m, err := c.engine().Calculate(name, dob)
	if err != nil {
		return nil, err
	}
	reading, err := c.resolver.Read(subject, m)
	if err != nil {
		return nil, err
	}
	for _, p := range reading.Fallbacks {
		c.logger.Warn("interpretation served from fallback entry", slog.String("pillar", p.String()))
	}
	return &reading, nil
}
