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

type customFieldRepository struct {
	*DB
	logger *logger.Logger
}

// NewCustomFieldRepository constructs the [CustomFieldRepository] backed by
// the custom_fields table.
func NewCustomFieldRepository(db *DB, logger *logger.Logger) CustomFieldRepository {
	return &customFieldRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *customFieldRepository) SaveCustomField(ctx context.Context, rec models.CustomFieldRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Insert("custom_fields").
		Columns("id", "account_id", "name", "value", "created_at", "updated_at").
		Values(rec.ID, rec.AccountID, rec.Name, string(rec.Value), rec.CreatedAt, rec.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := c.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "customFieldRepository.SaveCustomField").
			Str("field_id", rec.ID).
			Str("account_id", rec.AccountID).
			Msg("failed to insert custom field")
		return fmt.Errorf("failed to save custom field (id=%s): %w", rec.ID, err)
	}

	return nil
}

func (c *customFieldRepository) GetCustomField(ctx context.Context, id string) (models.CustomFieldRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Select("id", "account_id", "name", "value", "created_at", "updated_at").
		From("custom_fields").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.CustomFieldRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.CustomFieldRecord
	row := c.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&rec.ID, &rec.AccountID, &rec.Name, &rec.Value, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.CustomFieldRecord{}, ErrCustomFieldNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "customFieldRepository.GetCustomField").
			Str("field_id", id).
			Msg("failed to scan custom field row")
		return models.CustomFieldRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return rec, nil
}

func (c *customFieldRepository) GetCustomFieldsForAccount(ctx context.Context, accountID string) ([]models.CustomFieldRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Select("id", "account_id", "name", "value", "created_at", "updated_at").
		From("custom_fields").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "customFieldRepository.GetCustomFieldsForAccount").
			Str("account_id", accountID).
			Msg("failed to query custom fields")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.CustomFieldRecord
	for rows.Next() {
		var rec models.CustomFieldRecord
		if scanErr := rows.Scan(&rec.ID, &rec.AccountID, &rec.Name, &rec.Value, &rec.CreatedAt, &rec.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "customFieldRepository.GetCustomFieldsForAccount").
				Str("account_id", accountID).
				Msg("failed to scan custom field row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, rec)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "customFieldRepository.GetCustomFieldsForAccount").
			Str("account_id", accountID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating custom field rows: %w", rowsErr)
	}

	return items, nil
}

func (c *customFieldRepository) UpdateCustomField(ctx context.Context, update models.CustomFieldUpdate) error {
	log := logger.FromContext(ctx)

	builder := c.builder.
		Update("custom_fields").
		Set("updated_at", update.UpdatedAt).
		Where(sq.Eq{"id": update.ID})

	changed := false
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
		changed = true
	}
	if update.Value != nil {
		builder = builder.Set("value", string(*update.Value))
		changed = true
	}
	if !changed {
		return nil
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "customFieldRepository.UpdateCustomField").
				Str("field_id", update.ID).
				Msg("failed to execute update for custom field")
			return fmt.Errorf("failed to update custom field (id=%s): %w", update.ID, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected (id=%s): %w", update.ID, err)
		}
		if rowsAffected == 0 {
			return ErrCustomFieldNotFound
		}

		return nil
	})
}

func (c *customFieldRepository) DeleteCustomField(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Delete("custom_fields").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "customFieldRepository.DeleteCustomField").
			Str("field_id", id).
			Msg("failed to execute delete for custom field")
		return fmt.Errorf("failed to delete custom field (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}
	if rowsAffected == 0 {
		return ErrCustomFieldNotFound
	}

	return nil
}

func (c *customFieldRepository) DeleteCustomFieldsForAccount(ctx context.Context, accountID string) error {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Delete("custom_fields").
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// Zero affected rows is fine here: an account without custom fields
	// cascades to a no-op.
	if _, err := c.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "customFieldRepository.DeleteCustomFieldsForAccount").
			Str("account_id", accountID).
			Msg("failed to execute cascade delete for custom fields")
		return fmt.Errorf("failed to delete custom fields for account (account_id=%s): %w", accountID, err)
	}

	return nil
}
