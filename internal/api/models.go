package api

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/biovital365/mandala-api/internal/api/shared"
	"github.com/biovital365/mandala-api/internal/domain"
	"github.com/biovital365/mandala-api/internal/domain/interpretation"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
)

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest is the payload of POST /api/auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse is returned by every endpoint that issues tokens.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	// ExpiresAt is when the access token expires, RFC 3339.
	ExpiresAt string `json:"expires_at"`
}

// ReadingRequest is the onboarding payload: a name of 4 to 200 characters
// and a birth date in YYYY-MM-DD.
type ReadingRequest struct {
	Name      string `json:"name"       validate:"required,min=4,max=200"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

// Validate trims the name before checking the struct tags, so padding does
// not count towards the minimum length.
func (r *ReadingRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return shared.Validate.Struct(r)
}

// ParsedBirthDate returns the validated birth date.
func (r *ReadingRequest) ParsedBirthDate() (numerology.BirthDate, error) {
	return numerology.ParseBirthDate(r.BirthDate)
}

// CalculationResponse is a saved calculation without its interpretations.
type CalculationResponse struct {
	ID        uuid.UUID            `json:"id"`
	FullName  string               `json:"full_name"`
	BirthDate numerology.BirthDate `json:"birth_date"`
	AsOfYear  int                  `json:"as_of_year"`
	Map       numerology.Map       `json:"map"`
	CreatedAt time.Time            `json:"created_at"`
}

// CalculationReadingResponse pairs a saved calculation with its reading.
type CalculationReadingResponse struct {
	Calculation CalculationResponse     `json:"calculation"`
	Reading     *interpretation.Reading `json:"reading"`
}

// CalculationListResponse is one page of a user's calculations.
type CalculationListResponse struct {
	Calculations []CalculationResponse `json:"calculations"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

func calculationToResponse(c *domain.Calculation) CalculationResponse {
	return CalculationResponse{
		ID:        c.ID,
		FullName:  c.Subject.FullName,
		BirthDate: c.Subject.BirthDate,
		AsOfYear:  c.Subject.AsOfYear,
		Map:       c.Map,
		CreatedAt: c.CreatedAt,
	}
}
