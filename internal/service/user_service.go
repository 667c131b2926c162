package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/biovital365/mandala-api/internal/domain"
	"github.com/biovital365/mandala-api/internal/platform/logger"
	"github.com/biovital365/mandala-api/internal/store"
)

// UserService manages the accounts that own saved calculations.
type UserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// CreateUser registers an account. Returns ErrEmailExists when the
	// normalized address is taken.
	CreateUser(ctx context.Context, email, password string) (*domain.User, error)

	// DeleteUser removes an account together with its calculations.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a UserService. Writes run in transactions on db.
func NewUserService(userStore store.UserStore, db *sql.DB, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		s.logLookupFailure(ctx, err, slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		// The address itself is not logged.
		s.logLookupFailure(ctx, err)
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (s *userServiceImpl) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	candidate, err := domain.NewUser(email, password)
	if err != nil {
		log.Debug("registration rejected", slog.Any("error", err))
		return nil, fmt.Errorf("create user: %w", err)
	}

	user, err := store.InTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) (*domain.User, error) {
		if err := s.userStore.WithTx(tx).Create(ctx, candidate); err != nil {
			return nil, err
		}
		return candidate, nil
	})
	switch {
	case errors.Is(err, store.ErrEmailExists):
		log.Debug("registration for an existing email")
		return nil, fmt.Errorf("create user: %w", err)
	case err != nil:
		log.Error("failed to save user", slog.Any("error", err))
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return user, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Delete(ctx, userID)
	})
	if err != nil {
		s.logLookupFailure(ctx, err, slog.String("user_id", userID.String()))
		return fmt.Errorf("delete user: %w", err)
	}

	log.Info("user deleted", slog.String("user_id", userID.String()))
	return nil
}

// logLookupFailure logs missing users at debug and anything else at error.
func (s *userServiceImpl) logLookupFailure(ctx context.Context, err error, attrs ...any) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug("user not found", attrs...)
		return
	}
	log.Error("user store failure", append(attrs, slog.Any("error", err))...)
}
