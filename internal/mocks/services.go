package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/biovital365/mandala-api/internal/domain"
	"github.com/biovital365/mandala-api/internal/domain/interpretation"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
	"github.com/biovital365/mandala-api/internal/service"
)

// MockUserService implements service.UserService with function fields.
// Unset fields return zero values.
type MockUserService struct {
	GetUserFn        func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	CreateUserFn     func(ctx context.Context, email, password string) (*domain.User, error)
	DeleteUserFn     func(ctx context.Context, userID uuid.UUID) error
}

var _ service.UserService = (*MockUserService)(nil)

// GetUser implements service.UserService
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return nil, nil
}

// GetUserByEmail implements service.UserService
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetUserByEmailFn != nil {
		return m.GetUserByEmailFn(ctx, email)
	}
	return nil, nil
}

// CreateUser implements service.UserService
func (m *MockUserService) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, email, password)
	}
	return nil, nil
}

// DeleteUser implements service.UserService
func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	return nil
}

// MockReadingService implements service.ReadingService with function fields.
// Unset fields return zero values.
type MockReadingService struct {
	PreviewFn          func(ctx context.Context, fullName string, dob numerology.BirthDate) (*interpretation.Reading, error)
	RecordFn           func(ctx context.Context, userID uuid.UUID, fullName string, dob numerology.BirthDate) (*domain.Calculation, *interpretation.Reading, error)
	GetCalculationFn   func(ctx context.Context, userID, calculationID uuid.UUID) (*domain.Calculation, error)
	ListCalculationsFn func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Calculation, error)
	BuildReadingFn     func(ctx context.Context, subject numerology.Subject, m numerology.Map) (*interpretation.Reading, error)
	ExplainPillarFn    func(ctx context.Context, calc *domain.Calculation, p numerology.Pillar) (*interpretation.PillarReading, error)
	InterpretPillarFn  func(ctx context.Context, p numerology.Pillar, n int) (*interpretation.Interpretation, error)
}

var _ service.ReadingService = (*MockReadingService)(nil)

// Preview implements service.ReadingService
func (m *MockReadingService) Preview(
	ctx context.Context,
	fullName string,
	dob numerology.BirthDate,
) (*interpretation.Reading, error) {
	if m.PreviewFn != nil {
		return m.PreviewFn(ctx, fullName, dob)
	}
	return nil, nil
}

// Record implements service.ReadingService
func (m *MockReadingService) Record(
	ctx context.Context,
	userID uuid.UUID,
	fullName string,
	dob numerology.BirthDate,
) (*domain.Calculation, *interpretation.Reading, error) {
	if m.RecordFn != nil {
		return m.RecordFn(ctx, userID, fullName, dob)
	}
	return nil, nil, nil
}

// GetCalculation implements service.ReadingService
func (m *MockReadingService) GetCalculation(
	ctx context.Context,
	userID, calculationID uuid.UUID,
) (*domain.Calculation, error) {
	if m.GetCalculationFn != nil {
		return m.GetCalculationFn(ctx, userID, calculationID)
	}
	return nil, nil
}

// ListCalculations implements service.ReadingService
func (m *MockReadingService) ListCalculations(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Calculation, error) {
	if m.ListCalculationsFn != nil {
		return m.ListCalculationsFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

// BuildReading implements service.ReadingService
func (m *MockReadingService) BuildReading(
	ctx context.Context,
	subject numerology.Subject,
	mp numerology.Map,
) (*interpretation.Reading, error) {
	if m.BuildReadingFn != nil {
		return m.BuildReadingFn(ctx, subject, mp)
	}
	return nil, nil
}

// ExplainPillar implements service.ReadingService
func (m *MockReadingService) ExplainPillar(
	ctx context.Context,
	calc *domain.Calculation,
	p numerology.Pillar,
) (*interpretation.PillarReading, error) {
	if m.ExplainPillarFn != nil {
		return m.ExplainPillarFn(ctx, calc, p)
	}
	return nil, nil
}

// InterpretPillar implements service.ReadingService
func (m *MockReadingService) InterpretPillar(
	ctx context.Context,
	p numerology.Pillar,
	n int,
) (*interpretation.Interpretation, error) {
	if m.InterpretPillarFn != nil {
		return m.InterpretPillarFn(ctx, p, n)
	}
	return nil, nil
}
