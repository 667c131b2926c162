package numerology

import "errors"

var (
	// ErrInvalidDate is returned when year, month and day cannot form a calendar date.
	ErrInvalidDate = errors.New("invalid birth date")

	// ErrUnmappableName is returned when a name contains no letter from the gematria table.
	ErrUnmappableName = errors.New("name contains no mappable letters")

	// ErrUnknownPillar is returned for pillar identifiers outside the five known pillars.
	ErrUnknownPillar = errors.New("unknown pillar")
)
