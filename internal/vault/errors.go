package vault

import "errors"

var (
	// ErrVaultLocked is returned when an encrypt or decrypt operation is
	// attempted while the session is locked. This is a sequencing bug in
	// the caller, not a condition to retry.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrInvalidMasterPassword is returned when unlock verification fails.
	// The message does not reveal whether the vault exists or the password
	// is wrong.
	ErrInvalidMasterPassword = errors.New("invalid master password")

	// ErrAlreadyInitialized is returned when vault initialization is
	// attempted over an existing master-key record.
	ErrAlreadyInitialized = errors.New("vault is already initialized")
)
