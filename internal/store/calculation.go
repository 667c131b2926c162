package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/biovital365/mandala-api/internal/domain"
)

// CalculationStore persists saved readings. Calculations are append-only:
// there is no update, and they disappear only when their owner is deleted.
type CalculationStore interface {
	// Create saves a new calculation.
	// Returns ErrInvalidEntity if the calculation fails validation and
	// ErrUserNotFound if the owning user does not exist.
	Create(ctx context.Context, calc *domain.Calculation) error

	// GetByID retrieves a calculation by ID.
	// Returns ErrCalculationNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error)

	// ListByUser returns a user's calculations, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Calculation, error)

	// WithTx returns a CalculationStore bound to tx.
	WithTx(tx *sql.Tx) CalculationStore
}
