// Package postgres implements the pgxpool-backed store for the three
// harness binaries, satisfying the Generator's, Coordinator's, and
// Notifier's Repository interfaces against one PostgreSQL schema.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/growplan/engine/internal/coordinator"
	"github.com/growplan/engine/internal/generator"
	"github.com/growplan/engine/internal/notifier"
)

// Store provides the PostgreSQL implementation of all three Repository
// interfaces the engine depends on.
type Store struct {
	pool *pgxpool.Pool
}

var (
	_ generator.Repository  = (*Store)(nil)
	_ coordinator.Repository = (*Store)(nil)
	_ notifier.Repository    = (*Store)(nil)
)

// NewStore wraps an already-connected pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close closes the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// finalizeTx rolls back on error, commits on success.
func finalizeTx(ctx context.Context, tx pgx.Tx, err *error) {
	if *err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			slog.ErrorContext(ctx, "rollback failed", "original_error", *err, "rollback_error", rbErr)
			*err = fmt.Errorf("transaction failed: %w (rollback error: %v)", *err, rbErr)
		}
		return
	}
	*err = tx.Commit(ctx)
	if *err != nil {
		slog.ErrorContext(ctx, "transaction commit failed", "error", *err)
	}
}

// executeInTransaction runs fn inside a transaction, committing on success
// and rolling back on error or panic.
func (s *Store) executeInTransaction(ctx context.Context, operationName string, fn func(tx pgx.Tx) error) (err error) {
	start := time.Now().UTC()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				slog.ErrorContext(ctx, "rollback after panic failed", "operation", operationName, "panic", p, "rollback_error", rbErr)
			}
			panic(p)
		}
		finalizeTx(ctx, tx, &err)
		if err == nil {
			slog.DebugContext(ctx, "transaction completed", "operation", operationName, "duration_ms", time.Since(start).Milliseconds())
		}
	}()

	err = fn(tx)
	return
}
