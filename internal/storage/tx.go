package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// WithTx begins a transaction, runs fn against a transactional repository,
// and commits on success or rolls back on error/panic. Panics are rethrown.
// Used where several settings must change together, e.g. clearing the
// session-scoped keys on logout.
func WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, repo Repository) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, NewSQLiteRepository(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
