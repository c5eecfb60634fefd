package store

import "github.com/akarpov/passvault/internal/logger"

// NewStorages wires every repository over the shared database connection.
func NewStorages(db *DB, log *logger.Logger) Storages {
	return Storages{
		MasterKeys:   NewMasterKeyRepository(db, log),
		Accounts:     NewAccountRepository(db, log),
		CustomFields: NewCustomFieldRepository(db, log),
	}
}
