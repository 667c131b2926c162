package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/biovital365/mandala-api/internal/domain/numerology"
)

// Calculation validation errors
var (
	ErrEmptyCalculationID = errors.New("calculation ID cannot be empty")
	ErrEmptyFullName      = errors.New("full name cannot be empty")
	ErrInvalidAsOfYear    = errors.New("as-of year must be positive")
	ErrMapMismatch        = errors.New("map does not match its subject")
)

// Calculation is a saved reading: the subject a user entered and the map
// computed for it. Calculations are append-only.
type Calculation struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Subject   numerology.Subject `json:"subject"`
	Map       numerology.Map     `json:"map"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewCalculation creates a validated Calculation for userID.
func NewCalculation(userID uuid.UUID, subject numerology.Subject, m numerology.Map) (*Calculation, error) {
	c := &Calculation{
		ID:        uuid.New(),
		UserID:    userID,
		Subject:   subject,
		Map:       m,
		CreatedAt: time.Now().UTC(),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the identifiers and subject, and that Map is exactly what
// the engine derives from Subject.
func (c *Calculation) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCalculationID
	}
	if c.UserID == uuid.Nil {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(c.Subject.FullName) == "" {
		return ErrEmptyFullName
	}
	dob := c.Subject.BirthDate
	if _, err := numerology.NewBirthDate(dob.Year, dob.Month, dob.Day); err != nil {
		return err
	}
	if c.Subject.AsOfYear <= 0 {
		return ErrInvalidAsOfYear
	}
	if numerology.Derive(c.Subject) != c.Map {
		return ErrMapMismatch
	}
	return nil
}
