package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biovital365/mandala-api/internal/api/shared"
	"github.com/biovital365/mandala-api/internal/domain"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
	"github.com/biovital365/mandala-api/internal/service"
	"github.com/biovital365/mandala-api/internal/service/auth"
	"github.com/biovital365/mandala-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{auth.ErrExpiredToken, http.StatusUnauthorized},
		{auth.ErrWrongTokenType, http.StatusUnauthorized},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{service.NewReadingServiceError("get_calculation", "ownership check failed", service.ErrNotOwned), http.StatusForbidden},
		{fmt.Errorf("lookup: %w", store.ErrCalculationNotFound), http.StatusNotFound},
		{service.ErrUnknownNumber, http.StatusNotFound},
		{fmt.Errorf("%w: %q", numerology.ErrUnknownPillar, "moon"), http.StatusNotFound},
		{store.ErrEmailExists, http.StatusConflict},
		{numerology.ErrUnmappableName, http.StatusUnprocessableEntity},
		{numerology.ErrInvalidDate, http.StatusUnprocessableEntity},
		{domain.NewValidationError("limit", "must be a positive integer", domain.ErrValidation), http.StatusBadRequest},
		{domain.ErrPasswordTooShort, http.StatusInternalServerError},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "An unexpected error occurred"},
		{auth.ErrInvalidRefreshToken, "Invalid refresh token"},
		{service.ErrNotOwned, "You do not own this calculation"},
		{store.ErrCalculationNotFound, "Calculation not found"},
		{numerology.ErrUnmappableName, "Name must contain at least one letter"},
		{domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), "Invalid id: has invalid format"},
		{errors.New("pq: relation users does not exist at db.internal:5432"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
	}
}

func TestSanitizeValidationError(t *testing.T) {
	tests := []struct {
		name string
		req  any
		want string
	}{
		{"short name", &ReadingRequest{Name: "Ana", BirthDate: "1990-05-12"}, "Invalid name: must be at least 4 characters"},
		{"bad date", &ReadingRequest{Name: "Ana María", BirthDate: "12/05/1990"}, "Invalid birth_date: must be a date in YYYY-MM-DD format"},
		{"missing email", &LoginRequest{Password: "secret"}, "Invalid email: required field"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := shared.ValidateRequest(tc.req)
			assert.Equal(t, tc.want, SanitizeValidationError(err))
		})
	}

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}
