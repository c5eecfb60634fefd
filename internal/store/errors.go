package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotInitialized is returned when no master-key record exists yet.
	// It triggers the first-run initialization flow.
	ErrNotInitialized = errors.New("vault is not initialized")

	// ErrMasterKeyExists is returned when a second master-key record is
	// about to be written. The record is created once and is immutable.
	ErrMasterKeyExists = errors.New("master key record already exists")

	// ErrAccountNotFound is returned when a query or update targets an
	// account that does not exist in the database.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrCustomFieldNotFound is returned when a query or update targets a
	// custom field that does not exist in the database.
	ErrCustomFieldNotFound = errors.New("custom field was not found")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
