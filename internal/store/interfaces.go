package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/akarpov/passvault/models"
)

// MasterKeyStore persists the single master-key record of the vault. The
// record holds only salt, derivation parameters and the verification token;
// neither the master password nor the derived key ever crosses this
// boundary.
type MasterKeyStore interface {
	// SaveMasterKeyRecord writes the record created on first run. Fails
	// with ErrMasterKeyExists if a record is already present.
	SaveMasterKeyRecord(ctx context.Context, rec models.MasterKeyRecord) error

	// LoadMasterKeyRecord fails with ErrNotInitialized before first run.
	LoadMasterKeyRecord(ctx context.Context) (models.MasterKeyRecord, error)
}

// AccountRepository persists account rows. Secret content crosses this
// boundary only as an opaque [models.CipheredBlob].
type AccountRepository interface {
	SaveAccount(ctx context.Context, rec models.AccountRecord) error

	// GetAccount fails with ErrAccountNotFound for an unknown id.
	GetAccount(ctx context.Context, id string) (models.AccountRecord, error)

	GetAllAccounts(ctx context.Context) ([]models.AccountRecord, error)

	// UpdateAccount applies a partial update inside a transaction and
	// verifies exactly one row was replaced, so a failed update never
	// clobbers an existing valid payload.
	UpdateAccount(ctx context.Context, update models.AccountUpdate) error

	DeleteAccount(ctx context.Context, id string) error
}

// CustomFieldRepository persists custom-field rows attached to accounts.
type CustomFieldRepository interface {
	SaveCustomField(ctx context.Context, rec models.CustomFieldRecord) error

	// GetCustomField fails with ErrCustomFieldNotFound for an unknown id.
	GetCustomField(ctx context.Context, id string) (models.CustomFieldRecord, error)

	GetCustomFieldsForAccount(ctx context.Context, accountID string) ([]models.CustomFieldRecord, error)

	UpdateCustomField(ctx context.Context, update models.CustomFieldUpdate) error

	DeleteCustomField(ctx context.Context, id string) error

	// DeleteCustomFieldsForAccount removes every field referencing the
	// account. Used by the cascade on account deletion.
	DeleteCustomFieldsForAccount(ctx context.Context, accountID string) error
}

// ErrorClassificator maps driver-level errors to an [ErrorClassification]
// so repositories can decide whether an operation is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Storages aggregates every repository the services depend on.
type Storages struct {
	MasterKeys   MasterKeyStore
	Accounts     AccountRepository
	CustomFields CustomFieldRepository
}
