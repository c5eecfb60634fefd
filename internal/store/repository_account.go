// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/akarpov/passvault/internal/logger"
	"github.com/akarpov/passvault/models"
)

type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs the [AccountRepository] backed by the
// accounts table.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *accountRepository) SaveAccount(ctx context.Context, rec models.AccountRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := a.builder.
		Insert("accounts").
		Columns("id", "title", "username", "secret", "created_at", "updated_at").
		Values(rec.ID, rec.Title, rec.Username, string(rec.Secret), rec.CreatedAt, rec.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := a.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "accountRepository.SaveAccount").
			Str("account_id", rec.ID).
			Msg("failed to insert account")
		return fmt.Errorf("failed to save account (id=%s): %w", rec.ID, err)
	}

	return nil
}

func (a *accountRepository) GetAccount(ctx context.Context, id string) (models.AccountRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := a.builder.
		Select("id", "title", "username", "secret", "created_at", "updated_at").
		From("accounts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.AccountRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.AccountRecord
	row := a.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&rec.ID, &rec.Title, &rec.Username, &rec.Secret, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.AccountRecord{}, ErrAccountNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "accountRepository.GetAccount").
			Str("account_id", id).
			Msg("failed to scan account row")
		return models.AccountRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return rec, nil
}

func (a *accountRepository) GetAllAccounts(ctx context.Context) ([]models.AccountRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := a.builder.
		Select("id", "title", "username", "secret", "created_at", "updated_at").
		From("accounts").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.GetAllAccounts").Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.AccountRecord
	for rows.Next() {
		var rec models.AccountRecord
		if scanErr := rows.Scan(&rec.ID, &rec.Title, &rec.Username, &rec.Secret, &rec.CreatedAt, &rec.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "accountRepository.GetAllAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, rec)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "accountRepository.GetAllAccounts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating account rows: %w", rowsErr)
	}

	return items, nil
}

// UpdateAccount applies the partial update inside a transaction. The update
// either replaces the targeted row completely or leaves the table untouched;
// a missing row rolls back with ErrAccountNotFound so a failed update can
// never overwrite a valid payload with a truncated one.
func (a *accountRepository) UpdateAccount(ctx context.Context, update models.AccountUpdate) error {
	log := logger.FromContext(ctx)

	builder := a.builder.
		Update("accounts").
		Set("updated_at", update.UpdatedAt).
		Where(sq.Eq{"id": update.ID})

	changed := false
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		changed = true
	}
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
		changed = true
	}
	if update.Secret != nil {
		builder = builder.Set("secret", string(*update.Secret))
		changed = true
	}
	if !changed {
		return nil
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return a.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "accountRepository.UpdateAccount").
				Str("account_id", update.ID).
				Msg("failed to execute update for account")
			return fmt.Errorf("failed to update account (id=%s): %w", update.ID, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected (id=%s): %w", update.ID, err)
		}
		if rowsAffected == 0 {
			return ErrAccountNotFound
		}

		return nil
	})
}

func (a *accountRepository) DeleteAccount(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := a.builder.
		Delete("accounts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := a.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.DeleteAccount").
			Str("account_id", id).
			Msg("failed to execute delete for account")
		return fmt.Errorf("failed to delete account (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}
	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
