package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/biovital365/mandala-api/internal/domain"
	"github.com/biovital365/mandala-api/internal/domain/interpretation"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
	"github.com/biovital365/mandala-api/internal/platform/logger"
	"github.com/biovital365/mandala-api/internal/platform/metrics"
	"github.com/biovital365/mandala-api/internal/store"
)

// ReadingService computes, saves and interprets numerology readings.
type ReadingService interface {
	// Preview computes a reading without saving it.
	Preview(ctx context.Context, fullName string, dob numerology.BirthDate) (*interpretation.Reading, error)

	// Record computes a reading and appends it to userID's calculations.
	Record(
		ctx context.Context,
		userID uuid.UUID,
		fullName string,
		dob numerology.BirthDate,
	) (*domain.Calculation, *interpretation.Reading, error)

	// GetCalculation returns one of userID's calculations.
	// Returns ErrNotOwned if it belongs to someone else.
	GetCalculation(ctx context.Context, userID, calculationID uuid.UUID) (*domain.Calculation, error)

	// ListCalculations pages through userID's calculations, newest first.
	ListCalculations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Calculation, error)

	// BuildReading interprets every pillar of a map.
	BuildReading(ctx context.Context, subject numerology.Subject, m numerology.Map) (*interpretation.Reading, error)

	// ExplainPillar interprets one pillar of a saved calculation.
	ExplainPillar(ctx context.Context, calc *domain.Calculation, p numerology.Pillar) (*interpretation.PillarReading, error)

	// InterpretPillar looks up the text for a pillar and number.
	// Returns ErrUnknownNumber for numbers outside the table.
	InterpretPillar(ctx context.Context, p numerology.Pillar, n int) (*interpretation.Interpretation, error)
}

type readingServiceImpl struct {
	calcStore store.CalculationStore
	engine    numerology.Service
	resolver  *interpretation.Resolver
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewReadingService creates a ReadingService. metrics may be nil.
func NewReadingService(
	calcStore store.CalculationStore,
	engine numerology.Service,
	resolver *interpretation.Resolver,
	m *metrics.Metrics,
	logger *slog.Logger,
) (ReadingService, error) {
	if calcStore == nil {
		return nil, domain.NewValidationError("calcStore", "cannot be nil", domain.ErrValidation)
	}
	if engine == nil {
		return nil, domain.NewValidationError("engine", "cannot be nil", domain.ErrValidation)
	}
	if resolver == nil {
		return nil, domain.NewValidationError("resolver", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &readingServiceImpl{
		calcStore: calcStore,
		engine:    engine,
		resolver:  resolver,
		metrics:   m,
		logger:    logger.With(slog.String("component", "reading_service")),
	}, nil
}

// Preview implements ReadingService.
func (s *readingServiceImpl) Preview(
	ctx context.Context,
	fullName string,
	dob numerology.BirthDate,
) (*interpretation.Reading, error) {
	subject, m, err := s.engine.Calculate(fullName, dob)
	if err != nil {
		return nil, NewReadingServiceError("preview", "invalid subject", err)
	}

	reading, err := s.BuildReading(ctx, subject, m)
	if err != nil {
		return nil, err
	}
	s.metrics.IncReadingComputed(false)
	return reading, nil
}

// Record implements ReadingService.
func (s *readingServiceImpl) Record(
	ctx context.Context,
	userID uuid.UUID,
	fullName string,
	dob numerology.BirthDate,
) (*domain.Calculation, *interpretation.Reading, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	subject, m, err := s.engine.Calculate(fullName, dob)
	if err != nil {
		return nil, nil, NewReadingServiceError("record", "invalid subject", err)
	}

	calc, err := domain.NewCalculation(userID, subject, m)
	if err != nil {
		return nil, nil, NewReadingServiceError("record", "invalid calculation", err)
	}

	if err := s.calcStore.Create(ctx, calc); err != nil {
		log.Error("failed to save calculation",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, nil, NewReadingServiceError("record", "failed to save calculation", err)
	}

	reading, err := s.BuildReading(ctx, subject, m)
	if err != nil {
		return nil, nil, err
	}

	s.metrics.IncReadingComputed(true)
	log.Info("calculation recorded",
		slog.String("calculation_id", calc.ID.String()),
		slog.String("user_id", userID.String()))
	return calc, reading, nil
}

// GetCalculation implements ReadingService.
func (s *readingServiceImpl) GetCalculation(
	ctx context.Context,
	userID, calculationID uuid.UUID,
) (*domain.Calculation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	calc, err := s.calcStore.GetByID(ctx, calculationID)
	if err != nil {
		if !errors.Is(err, store.ErrCalculationNotFound) {
			log.Error("failed to retrieve calculation",
				slog.String("error", err.Error()),
				slog.String("calculation_id", calculationID.String()))
		}
		return nil, NewReadingServiceError("get_calculation", "failed to retrieve calculation", err)
	}

	if calc.UserID != userID {
		log.Warn("calculation requested by non-owner",
			slog.String("calculation_id", calculationID.String()),
			slog.String("user_id", userID.String()))
		return nil, NewReadingServiceError("get_calculation", "ownership check failed", ErrNotOwned)
	}

	return calc, nil
}

// ListCalculations implements ReadingService.
func (s *readingServiceImpl) ListCalculations(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Calculation, error) {
	calcs, err := s.calcStore.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, NewReadingServiceError("list_calculations", "failed to list calculations", err)
	}
	return calcs, nil
}

// BuildReading implements ReadingService. Numbers outside the
// interpretation table are served from the fallback entry, logged and counted.
func (s *readingServiceImpl) BuildReading(
	ctx context.Context,
	subject numerology.Subject,
	m numerology.Map,
) (*interpretation.Reading, error) {
	reading, err := s.resolver.Read(subject, m)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to build reading",
			slog.String("error", err.Error()))
		return nil, NewReadingServiceError("build_reading", "failed to interpret map", err)
	}

	for _, p := range reading.Fallbacks {
		s.reportFallback(ctx, p, m)
	}
	return &reading, nil
}

// ExplainPillar implements ReadingService.
func (s *readingServiceImpl) ExplainPillar(
	ctx context.Context,
	calc *domain.Calculation,
	p numerology.Pillar,
) (*interpretation.PillarReading, error) {
	pr, inTable, err := s.resolver.ExplainPillar(p, calc.Map, calc.Subject)
	if err != nil {
		return nil, NewReadingServiceError("explain_pillar", "failed to explain pillar", err)
	}
	if !inTable {
		s.reportFallback(ctx, p, calc.Map)
	}
	return &pr, nil
}

// InterpretPillar implements ReadingService.
func (s *readingServiceImpl) InterpretPillar(
	ctx context.Context,
	p numerology.Pillar,
	n int,
) (*interpretation.Interpretation, error) {
	if !p.Valid() {
		return nil, NewReadingServiceError("interpret_pillar", "unknown pillar", numerology.ErrUnknownPillar)
	}
	if !slices.Contains(interpretation.BaseNumbers, n) {
		return nil, NewReadingServiceError("interpret_pillar", "number outside table", ErrUnknownNumber)
	}

	interp, _ := s.resolver.Interpret(p, n)
	return &interp, nil
}

func (s *readingServiceImpl) reportFallback(ctx context.Context, p numerology.Pillar, m numerology.Map) {
	n, _ := m.Value(p)
	logger.FromContextOrDefault(ctx, s.logger).Warn("interpretation served from fallback entry",
		slog.String("pillar", p.String()),
		slog.Int("number", n))
	s.metrics.IncInterpretationFallback(p.String())
}
