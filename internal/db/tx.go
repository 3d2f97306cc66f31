package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/facturio/facturio-api/internal/logger"
)

// TxRunner runs a function inside a single database transaction. Every
// multi-step unit of work in the billing engine (one invoice generated from
// one template) passes through this boundary so partial writes can never be
// observed.
type TxRunner interface {
	InTx(ctx context.Context, fn func(q Querier) error) error
}

// PoolTxRunner is the pgx-backed TxRunner.
type PoolTxRunner struct {
	pool *pgxpool.Pool
}

func NewPoolTxRunner(pool *pgxpool.Pool) *PoolTxRunner {
	return &PoolTxRunner{pool: pool}
}

// InTx executes fn with a transaction-scoped Querier. The transaction is
// committed when fn returns nil and rolled back on every other exit path.
func (r *PoolTxRunner) InTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Ensure we always attempt to finalize the transaction
	defer func() {
		// If transaction is already closed (committed), rollback will return ErrTxClosed
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction",
				zap.Error(rollbackErr),
			)
		}
	}()

	if err := fn(New(tx)); err != nil {
		// fn returned error, transaction will be rolled back by defer
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
