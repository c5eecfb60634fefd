package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/akarpov/passvault/internal/logger"
	"github.com/akarpov/passvault/migrations"
)

// DB wraps *sql.DB with the pieces repositories need: a squirrel statement
// builder configured for the driver's placeholder format, an error
// classifier, and a logger.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	dialect            string
}

// Migrate runs the embedded goose migrations against the wrapped database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
