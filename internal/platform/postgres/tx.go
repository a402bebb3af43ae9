// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxStarter is the part of [*pgxpool.Pool] needed to open a transaction.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTx runs fn inside a single transaction.
//
// The transaction is committed only when fn returns nil. On an error, a panic,
// or a failed commit it is rolled back, and the underlying connection goes
// back to the pool on every exit path. Errors returned by fn are passed
// through unchanged so callers keep their [apperr.AppError] classification.
func WithTx(ctx context.Context, db TxStarter, fn func(tx pgx.Tx) error) error {
	transaction, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}

	// Rollback after a successful Commit is a no-op (pgx.ErrTxClosed).
	defer func() { _ = transaction.Rollback(ctx) }()

	if err := fn(transaction); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit transaction: %w", err)
	}

	return nil
}
