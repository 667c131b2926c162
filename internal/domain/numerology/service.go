package numerology

import (
	"fmt"
	"strings"
	"time"
)

// Service defines the interface for computing maps from raw user input.
type Service interface {
	// Calculate validates the name, stamps the current year from the service
	// clock and returns the subject together with its map.
	Calculate(fullName string, dob BirthDate) (Subject, Map, error)

	// Recompute rebuilds the map of a previously captured subject.
	Recompute(s Subject) Map
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	now func() time.Time
}

// NewService creates a Service that reads the evaluation year from now.
// A nil clock defaults to time.Now.
func NewService(now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &defaultService{now: now}
}

// Calculate implements Service.
//
// Names with no letter in the gematria table are rejected here with
// ErrUnmappableName; the formulas themselves accept them and yield 0.
func (s *defaultService) Calculate(fullName string, dob BirthDate) (Subject, Map, error) {
	name := strings.Join(strings.Fields(fullName), " ")
	if !HasMappableLetters(name) {
		return Subject{}, Map{}, ErrUnmappableName
	}
	if _, err := NewBirthDate(dob.Year, dob.Month, dob.Day); err != nil {
		return Subject{}, Map{}, fmt.Errorf("calculate: %w", err)
	}

	subject := Subject{
		FullName:  name,
		BirthDate: dob,
		AsOfYear:  s.now().Year(),
	}
	return subject, Derive(subject), nil
}

// Recompute implements Service.
func (s *defaultService) Recompute(subject Subject) Map {
	return Derive(subject)
}
