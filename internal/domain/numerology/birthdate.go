package numerology

import (
	"fmt"
	"time"
)

// birthDateLayout is the only textual form a BirthDate accepts and produces.
const birthDateLayout = "2006-01-02"

// BirthDate is a timezone-naive calendar date.
//
// It carries no location: the components entered by the user are the
// components the formulas see, regardless of where the process runs.
//
// Only values built by NewBirthDate, ParseBirthDate, BirthDateFromTime or
// UnmarshalText are valid. The formulas do not re-check the components, so a
// literal such as BirthDate{Month: 14} yields a meaningless map;
// Service.Calculate and domain.Calculation.Validate reject such values.
type BirthDate struct {
	Year  int
	Month int
	Day   int
}

// NewBirthDate validates the components and returns a BirthDate.
// Returns ErrInvalidDate if the month is outside 1..12, the day is outside
// 1..31, the year is negative, or the day does not exist in that month.
func NewBirthDate(year, month, day int) (BirthDate, error) {
	if year < 0 {
		return BirthDate{}, fmt.Errorf("%w: year %d is negative", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return BirthDate{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > 31 {
		return BirthDate{}, fmt.Errorf("%w: day %d out of range", ErrInvalidDate, day)
	}

	// time.Date normalizes overflow (Feb 30 -> Mar 2), so a round trip
	// detects days that do not exist in the given month.
	t := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return BirthDate{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist", ErrInvalidDate, year, month, day)
	}

	return BirthDate{Year: year, Month: month, Day: day}, nil
}

// ParseBirthDate parses a YYYY-MM-DD string.
func ParseBirthDate(s string) (BirthDate, error) {
	t, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return BirthDate{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	return NewBirthDate(t.Year(), int(t.Month()), t.Day())
}

// BirthDateFromTime takes the wall-clock date of t in t's own location.
// No zone conversion is applied.
func BirthDateFromTime(t time.Time) BirthDate {
	y, m, d := t.Date()
	return BirthDate{Year: y, Month: int(m), Day: d}
}

// Time returns the date at midnight UTC, suitable for a SQL DATE column.
func (d BirthDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero value.
func (d BirthDate) IsZero() bool {
	return d == BirthDate{}
}

// String formats the date as YYYY-MM-DD.
func (d BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d BirthDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *BirthDate) UnmarshalText(text []byte) error {
	parsed, err := ParseBirthDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
