package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/passvault/internal/logger"
	"github.com/akarpov/passvault/models"
)

func testCustomFieldRecord() models.CustomFieldRecord {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return models.CustomFieldRecord{
		ID:        "f-1",
		AccountID: "acc-1",
		Name:      "PIN",
		Value:     models.CipheredBlob("b64blob"),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCustomFieldRepository_SaveCustomField(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomFieldRepository(db, logger.Nop())
	rec := testCustomFieldRecord()

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO custom_fields (id,account_id,name,value,created_at,updated_at) VALUES (?,?,?,?,?,?)",
	)).
		WithArgs(rec.ID, rec.AccountID, rec.Name, string(rec.Value), rec.CreatedAt, rec.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveCustomField(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomFieldRepository_GetCustomField(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomFieldRepository(db, logger.Nop())
	rec := testCustomFieldRecord()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, account_id, name, value, created_at, updated_at FROM custom_fields WHERE id = ?",
	)).
		WithArgs(rec.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "name", "value", "created_at", "updated_at"}).
			AddRow(rec.ID, rec.AccountID, rec.Name, string(rec.Value), rec.CreatedAt, rec.UpdatedAt))

	got, err := repo.GetCustomField(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestCustomFieldRepository_GetCustomFieldNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomFieldRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .+ FROM custom_fields").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "name", "value", "created_at", "updated_at"}))

	_, err := repo.GetCustomField(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCustomFieldNotFound)
}

func TestCustomFieldRepository_GetCustomFieldsForAccount(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomFieldRepository(db, logger.Nop())
	rec := testCustomFieldRecord()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, account_id, name, value, created_at, updated_at FROM custom_fields WHERE account_id = ? ORDER BY created_at",
	)).
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "name", "value", "created_at", "updated_at"}).
			AddRow(rec.ID, rec.AccountID, rec.Name, string(rec.Value), rec.CreatedAt, rec.UpdatedAt).
			AddRow("f-2", rec.AccountID, "Recovery", "blob2", rec.CreatedAt, rec.UpdatedAt))

	items, err := repo.GetCustomFieldsForAccount(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "f-1", items[0].ID)
	assert.Equal(t, "f-2", items[1].ID)
}

func TestCustomFieldRepository_UpdateCustomField(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomFieldRepository(db, logger.Nop())

	blob := models.CipheredBlob("newblob")
	update := models.CustomFieldUpdate{ID: "f-1", Value: &blob, UpdatedAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE custom_fields SET updated_at = ?, value = ? WHERE id = ?",
	)).
		WithArgs(update.UpdatedAt, string(blob), update.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateCustomField(context.Background(), update))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomFieldRepository_UpdateCustomFieldNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomFieldRepository(db, logger.Nop())

	name := "Renamed"
	update := models.CustomFieldUpdate{ID: "missing", Name: &name, UpdatedAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE custom_fields").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateCustomField(context.Background(), update)
	assert.ErrorIs(t, err, ErrCustomFieldNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomFieldRepository_DeleteCustomField(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomFieldRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM custom_fields WHERE id = ?")).
		WithArgs("f-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteCustomField(context.Background(), "f-1"))
}

func TestCustomFieldRepository_DeleteCustomFieldNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomFieldRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM custom_fields").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCustomField(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCustomFieldNotFound)
}

func TestCustomFieldRepository_DeleteCustomFieldsForAccount(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomFieldRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM custom_fields WHERE account_id = ?")).
		WithArgs("acc-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteCustomFieldsForAccount(context.Background(), "acc-1"))
}

func TestCustomFieldRepository_DeleteCustomFieldsForAccountNoRows(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomFieldRepository(db, logger.Nop())

	// An account without custom fields cascades to a no-op, not an error.
	mock.ExpectExec("DELETE FROM custom_fields").
		WithArgs("acc-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteCustomFieldsForAccount(context.Background(), "acc-1"))
}
