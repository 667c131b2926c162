package interpretation

import "errors"

var (
	// ErrInvalidCatalog is returned when catalog data is malformed or incomplete.
	ErrInvalidCatalog = errors.New("invalid interpretation catalog")

	// ErrStepsMismatch is returned when a pillar's recomputed trace does not
	// produce the number stored in the map being explained.
	ErrStepsMismatch = errors.New("calculation steps do not match map value")
)
