package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/biovital365/mandala-api/internal/domain"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
	"github.com/biovital365/mandala-api/internal/platform/logger"
	"github.com/biovital365/mandala-api/internal/store"
)

// MaxListLimit caps the page size accepted by ListByUser.
const MaxListLimit = 100

const calculationColumns = `id, user_id, full_name, birth_date, as_of_year,
	essence, life_path, name_vibration, personal_year, divine_gift, created_at`

// PostgresCalculationStore implements store.CalculationStore on PostgreSQL.
type PostgresCalculationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCalculationStore creates a calculation store.
// If logger is nil, the default logger is used.
func NewPostgresCalculationStore(db store.DBTX, logger *slog.Logger) *PostgresCalculationStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCalculationStore{
		db:     db,
		logger: logger.With(slog.String("component", "calculation_store")),
	}
}

var _ store.CalculationStore = (*PostgresCalculationStore)(nil)

// WithTx implements store.CalculationStore.WithTx
func (s *PostgresCalculationStore) WithTx(tx *sql.Tx) store.CalculationStore {
	return &PostgresCalculationStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.CalculationStore.Create
func (s *PostgresCalculationStore) Create(ctx context.Context, calc *domain.Calculation) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := calc.Validate(); err != nil {
		log.Warn("calculation validation failed during create",
			slog.String("error", err.Error()),
			slog.String("calculation_id", calc.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO calculations (` + calculationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	m := calc.Map
	_, err := s.db.ExecContext(ctx, query,
		calc.ID,
		calc.UserID,
		calc.Subject.FullName,
		calc.Subject.BirthDate.Time(),
		calc.Subject.AsOfYear,
		m.Essence,
		m.LifePath,
		m.NameVibration,
		m.PersonalYear,
		m.DivineGift,
		calc.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create calculation",
			slog.String("error", err.Error()),
			slog.String("calculation_id", calc.ID.String()),
			slog.String("user_id", calc.UserID.String()))
		return MapError(err)
	}

	log.Info("calculation created",
		slog.String("calculation_id", calc.ID.String()),
		slog.String("user_id", calc.UserID.String()))
	return nil
}

// GetByID implements store.CalculationStore.GetByID
func (s *PostgresCalculationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + calculationColumns + ` FROM calculations WHERE id = $1`
	calc, err := scanCalculation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("calculation not found", slog.String("calculation_id", id.String()))
			return nil, store.ErrCalculationNotFound
		}
		log.Error("failed to get calculation",
			slog.String("error", err.Error()),
			slog.String("calculation_id", id.String()))
		return nil, MapError(err)
	}

	return calc, nil
}

// ListByUser implements store.CalculationStore.ListByUser. limit is clamped
// to 1..MaxListLimit and a negative offset is treated as zero.
func (s *PostgresCalculationStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Calculation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	limit = min(max(limit, 1), MaxListLimit)
	offset = max(offset, 0)

	query := `
		SELECT ` + calculationColumns + `
		FROM calculations
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`
	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		log.Error("failed to list calculations",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	calcs := make([]*domain.Calculation, 0, limit)
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			log.Error("failed to scan calculation row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}
		calcs = append(calcs, calc)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating calculation rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error iterating calculation rows: %w", err)
	}

	log.Debug("calculations listed",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(calcs)))
	return calcs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCalculation(row rowScanner) (*domain.Calculation, error) {
	var (
		calc      domain.Calculation
		birthDate time.Time
	)
	err := row.Scan(
		&calc.ID,
		&calc.UserID,
		&calc.Subject.FullName,
		&birthDate,
		&calc.Subject.AsOfYear,
		&calc.Map.Essence,
		&calc.Map.LifePath,
		&calc.Map.NameVibration,
		&calc.Map.PersonalYear,
		&calc.Map.DivineGift,
		&calc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	calc.Subject.BirthDate = numerology.BirthDateFromTime(birthDate)
	return &calc, nil
}
