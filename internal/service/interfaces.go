package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/akarpov/passvault/models"
)

// AccountService is the business-facing CRUD surface for accounts. Every
// operation requires an unlocked vault session; vault.ErrVaultLocked,
// crypto.ErrTamperedData and store.ErrAccountNotFound propagate unchanged.
type AccountService interface {
	// Create encrypts the secret fields and persists a new account. The
	// returned account carries the secrets in plaintext for the immediate
	// caller only; that plaintext is never re-persisted.
	Create(ctx context.Context, dto models.CreateAccountDTO) (models.Account, error)

	// Get loads and decrypts a single account.
	Get(ctx context.Context, id string) (models.Account, error)

	// GetAll loads and decrypts every account.
	GetAll(ctx context.Context) ([]models.Account, error)

	// Update applies a partial update. Any change to a secret field
	// re-encrypts the whole secret payload under a fresh nonce.
	Update(ctx context.Context, id string, dto models.UpdateAccountDTO) (models.Account, error)

	// Delete removes the account and cascades deletion of its custom
	// fields.
	Delete(ctx context.Context, id string) error

	// Any reports whether the vault contains at least one account.
	Any(ctx context.Context) (bool, error)
}

// CustomFieldService is the business-facing CRUD surface for user-defined
// fields attached to accounts.
type CustomFieldService interface {
	// Create verifies the owning account exists, encrypts the value and
	// persists the field.
	Create(ctx context.Context, dto models.CreateCustomFieldDTO) (models.CustomField, error)

	Get(ctx context.Context, id string) (models.CustomField, error)

	GetAllForAccount(ctx context.Context, accountID string) ([]models.CustomField, error)

	Update(ctx context.Context, id string, dto models.UpdateCustomFieldDTO) (models.CustomField, error)

	Delete(ctx context.Context, id string) error
}
