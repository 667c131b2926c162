package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/biovital365/mandala-api/internal/platform/logger"
)

// TxFn runs inside a transaction. Returning nil commits; returning an error
// rolls back.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction executes fn in a transaction on db.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	_, err := InTx(ctx, db, func(ctx context.Context, tx *sql.Tx) (struct{}, error) {
		return struct{}{}, fn(ctx, tx)
	})
	return err
}

// InTx executes fn in a transaction on db and returns its result once the
// transaction commits. The transaction is rolled back when fn fails or
// panics; a panic is re-raised after the rollback.
func InTx[T any](ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx *sql.Tx) (T, error)) (result T, err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", slog.Any("error", err))
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction after panic",
				slog.Any("error", rbErr), slog.Any("panic", p))
		} else {
			log.Error("rolled back transaction after panic", slog.Any("panic", p))
		}
		// ALLOW-PANIC: propagating a panic raised inside the transaction
		panic(p)
	}()

	result, err = fn(ctx, tx)
	if err != nil {
		var zero T
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction",
				slog.Any("rollback_error", rbErr), slog.Any("original_error", err))
			return zero, errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		log.Debug("rolled back transaction", slog.Any("error", err))
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		var zero T
		log.Error("failed to commit transaction", slog.Any("error", err))
		return zero, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
	return result, nil
}
