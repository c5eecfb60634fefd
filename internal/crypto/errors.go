package crypto

import "errors"

// Sentinel errors returned by the crypto packages. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrWeakMasterPassword is returned when vault initialization is
	// attempted with an empty master password.
	ErrWeakMasterPassword = errors.New("master password is too weak")

	// ErrTamperedData is returned when AEAD authentication fails during
	// decryption. A wrong key, a corrupted ciphertext and a corrupted
	// nonce or tag are deliberately indistinguishable.
	ErrTamperedData = errors.New("data is corrupted or the key is wrong")

	// ErrMalformedRecord is returned when decryption succeeds but the
	// plaintext does not parse back into the expected canonical structure.
	// Distinct from ErrTamperedData: authentication passed, parsing failed.
	ErrMalformedRecord = errors.New("decrypted record has malformed structure")

	// ErrUnknownAlgorithm is returned when a master-key record names a
	// key-derivation algorithm this build does not implement.
	ErrUnknownAlgorithm = errors.New("unknown key derivation algorithm")
)
