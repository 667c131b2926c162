package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/biovital365/mandala-api/internal/domain"
	"github.com/biovital365/mandala-api/internal/store"
)

// MockCalculationStore is a testify mock of store.CalculationStore.
type MockCalculationStore struct {
	mock.Mock
}

var _ store.CalculationStore = (*MockCalculationStore)(nil)

// Create mocks store.CalculationStore.Create
func (m *MockCalculationStore) Create(ctx context.Context, calc *domain.Calculation) error {
	args := m.Called(ctx, calc)
	return args.Error(0)
}

// GetByID mocks store.CalculationStore.GetByID
func (m *MockCalculationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	args := m.Called(ctx, id)
	if calc, ok := args.Get(0).(*domain.Calculation); ok {
		return calc, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByUser mocks store.CalculationStore.ListByUser
func (m *MockCalculationStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Calculation, error) {
	args := m.Called(ctx, userID, limit, offset)
	if calcs, ok := args.Get(0).([]*domain.Calculation); ok {
		return calcs, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the same mock.
func (m *MockCalculationStore) WithTx(tx *sql.Tx) store.CalculationStore {
	return m
}
