package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/passvault/internal/logger"
)

// newPostgresTestDB wraps a sqlmock connection in the repository DB type with
// the postgres placeholder format and error classifier.
func newPostgresTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
		dialect:            "pgx",
	}, mock
}

func TestExecContext_RetriesDeadlock(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	deadlock := &pgconn.PgError{Code: pgerrcode.DeadlockDetected}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE id = $1")).
		WithArgs("acc-1").
		WillReturnError(deadlock)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE id = $1")).
		WithArgs("acc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := db.ExecContext(context.Background(), "DELETE FROM accounts WHERE id = $1", "acc-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecContext_DoesNotRetryConstraintViolation(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	violation := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts (id) VALUES ($1)")).
		WithArgs("acc-1").
		WillReturnError(violation)

	_, err := db.ExecContext(context.Background(), "INSERT INTO accounts (id) VALUES ($1)", "acc-1")
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*pgconn.PgError))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecContext_GivesUpAfterMaxRetries(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	connLost := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}

	for range retryMaxRetries + 1 {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE id = $1")).
			WithArgs("acc-1").
			WillReturnError(connLost)
	}

	_, err := db.ExecContext(context.Background(), "DELETE FROM accounts WHERE id = $1", "acc-1")
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*pgconn.PgError))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryContext_RetriesConnectionFailure(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	connLost := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM accounts")).
		WillReturnError(connLost)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM accounts")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("acc-1"))

	rows, err := db.QueryContext(context.Background(), "SELECT id FROM accounts")
	require.NoError(t, err)
	defer rows.Close()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RetriesWholeTransactionOnDeadlock(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	deadlock := &pgconn.PgError{Code: pgerrcode.DeadlockDetected}

	// The aborted transaction must be rolled back and restarted, not
	// resumed.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET title = $1 WHERE id = $2")).
		WithArgs("t", "acc-1").
		WillReturnError(deadlock)
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET title = $1 WHERE id = $2")).
		WithArgs("t", "acc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.withTx(context.Background(), func(tx *sql.Tx) error {
		_, execErr := tx.ExecContext(context.Background(), "UPDATE accounts SET title = $1 WHERE id = $2", "t", "acc-1")
		return execErr
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_SentinelErrorNotRetried(t *testing.T) {
	db, mock := newPostgresTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET title = $1 WHERE id = $2")).
		WithArgs("t", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := db.withTx(context.Background(), func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(context.Background(), "UPDATE accounts SET title = $1 WHERE id = $2", "t", "missing")
		require.NoError(t, execErr)
		affected, affErr := result.RowsAffected()
		require.NoError(t, affErr)
		if affected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
	require.ErrorIs(t, err, ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecContext_SQLiteNeverRetries(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE id = ?")).
		WithArgs("acc-1").
		WillReturnError(errors.New("disk I/O error"))

	_, err := db.ExecContext(context.Background(), "DELETE FROM accounts WHERE id = ?", "acc-1")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
