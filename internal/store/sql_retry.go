// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/akarpov/passvault/internal/logger"
)

// Transient driver failures (connection drops, deadlock rollbacks) get a
// bounded number of extra attempts before the error reaches the caller.
const (
	retryMaxRetries = 2
	retryWait       = 100 * time.Millisecond
)

func (db *DB) backoff() retry.Backoff {
	return retry.WithMaxRetries(retryMaxRetries, retry.NewConstant(retryWait))
}

// retryable marks err for another attempt when the error classificator
// reports a transient failure; every other error aborts the retry loop.
func (db *DB) retryable(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if db.errorClassificator.Classify(err) == Retryable {
		logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, retrying")
		return retry.RetryableError(err)
	}
	return err
}

// ExecContext shadows the embedded connection's method, retrying failures
// the error classificator reports as transient.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result

	err := retry.Do(ctx, db.backoff(), func(ctx context.Context) error {
		var execErr error
		result, execErr = db.DB.ExecContext(ctx, query, args...)
		return db.retryable(ctx, execErr)
	})

	return result, err
}

// QueryContext shadows the embedded connection's method, retrying failures
// the error classificator reports as transient.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	var rows *sql.Rows

	err := retry.Do(ctx, db.backoff(), func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = db.DB.QueryContext(ctx, query, args...)
		return db.retryable(ctx, queryErr)
	})

	return rows, err
}

// withTx runs fn inside a transaction and retries the whole transaction on
// transient failures. A deadlock rollback aborts the open transaction, so
// the retry must restart it rather than re-run a single statement.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return retry.Do(ctx, db.backoff(), func(ctx context.Context) error {
		tx, err := db.DB.BeginTx(ctx, nil)
		if err != nil {
			return db.retryable(ctx, fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
		}
		defer tx.Rollback()

		if err := fn(tx); err != nil {
			return db.retryable(ctx, err)
		}

		if err := tx.Commit(); err != nil {
			return db.retryable(ctx, fmt.Errorf("%w: %w", ErrCommittingTransaction, err))
		}
		return nil
	})
}
