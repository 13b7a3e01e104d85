package database

import (
	"context"
	"fmt"

	"github.com/curaline/curaline_backend/internal/repo"
)

// WithTx runs fn inside a transaction. Any error (including a panic) rolls
// the whole transaction back, so a failure mid-operation leaves no partial
// state behind.
func WithTx(ctx context.Context, db *repo.Client, fn func(tx *repo.Tx) error) error {
	tx, err := db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
