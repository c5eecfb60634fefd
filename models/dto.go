package models

import "time"

// CreateAccountDTO carries the plaintext input for a new account. Secret
// fields are encrypted by the service before anything is persisted.
type CreateAccountDTO struct {
	Title          string
	Username       string
	Password       string
	URL            string
	Notes          string
	ExpirationDate *time.Time
}

// UpdateAccountDTO carries a partial update for an existing account. Nil
// fields are left untouched; any change to a secret field re-encrypts the
// whole secret payload under a fresh nonce.
type UpdateAccountDTO struct {
	Title          *string
	Username       *string
	Password       *string
	URL            *string
	Notes          *string
	ExpirationDate *time.Time

	// ClearExpirationDate removes a previously set expiration date. A nil
	// ExpirationDate alone means "unchanged", so clearing needs its own
	// flag. Ignored when ExpirationDate is non-nil.
	ClearExpirationDate bool
}

// CreateCustomFieldDTO carries the plaintext input for a new custom field.
type CreateCustomFieldDTO struct {
	AccountID string
	Name      string
	Value     string
}

// UpdateCustomFieldDTO carries a partial update for a custom field.
type UpdateCustomFieldDTO struct {
	Name  *string
	Value *string
}
