package interpretation

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/biovital365/mandala-api/internal/domain/numerology"
)

//go:embed catalog.yaml
var catalogYAML []byte

// BaseNumbers are the reduced values every catalog must describe.
var BaseNumbers = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 22, 33}

// fallbackNumber is the entry served for numbers outside BaseNumbers.
const fallbackNumber = 1

// Entry is the pillar-independent text for one number.
type Entry struct {
	Subtitle    string   `yaml:"subtitle"`
	Description string   `yaml:"description"`
	Essence     string   `yaml:"essence"`
	Challenges  []string `yaml:"challenges"`
	Gift        string   `yaml:"gift"`
}

// Templates are the three synthesis narratives.
type Templates struct {
	Equal    string `yaml:"equal"`
	Harmonic string `yaml:"harmonic"`
	Contrast string `yaml:"contrast"`
}

// Catalog is the complete static text used by a Resolver.
type Catalog struct {
	DefaultTitle   string                               `yaml:"default_title"`
	FallbackNuance string                               `yaml:"fallback_nuance"`
	Titles         map[numerology.Pillar]string         `yaml:"titles"`
	Numbers        map[int]Entry                        `yaml:"numbers"`
	Nuances        map[numerology.Pillar]map[int]string `yaml:"nuances"`
	Synthesis      Templates                            `yaml:"synthesis"`
}

// ParseCatalog decodes YAML catalog data and validates it.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every base number has a subtitle and at least one
// challenge, that nuance overlays only name known pillars, and that all
// synthesis templates are present.
func (c *Catalog) Validate() error {
	if strings.TrimSpace(c.FallbackNuance) == "" {
		return fmt.Errorf("%w: fallback_nuance is empty", ErrInvalidCatalog)
	}
	if strings.TrimSpace(c.DefaultTitle) == "" {
		return fmt.Errorf("%w: default_title is empty", ErrInvalidCatalog)
	}
	for _, n := range BaseNumbers {
		e, ok := c.Numbers[n]
		if !ok {
			return fmt.Errorf("%w: number %d has no entry", ErrInvalidCatalog, n)
		}
		if strings.TrimSpace(e.Subtitle) == "" {
			return fmt.Errorf("%w: number %d has no subtitle", ErrInvalidCatalog, n)
		}
		if len(e.Challenges) == 0 {
			return fmt.Errorf("%w: number %d has no challenges", ErrInvalidCatalog, n)
		}
	}
	for _, p := range numerology.Pillars {
		if strings.TrimSpace(c.Titles[p]) == "" {
			return fmt.Errorf("%w: pillar %s has no title", ErrInvalidCatalog, p)
		}
	}
	for p := range c.Nuances {
		if !p.Valid() {
			return fmt.Errorf("%w: nuances for unknown pillar %q", ErrInvalidCatalog, string(p))
		}
	}
	if c.Synthesis.Equal == "" || c.Synthesis.Harmonic == "" || c.Synthesis.Contrast == "" {
		return fmt.Errorf("%w: synthesis templates incomplete", ErrInvalidCatalog)
	}
	return nil
}

// DefaultCatalog returns the embedded catalog, parsed on first use.
var DefaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
})
