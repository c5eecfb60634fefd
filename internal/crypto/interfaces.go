package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/akarpov/passvault/models"

// Keyring turns the master password into the symmetric vault key and back
// into a verification decision. It never stores the password or the key;
// everything it needs to re-derive lives in the persisted
// [models.MasterKeyRecord].
type Keyring interface {
	// Initialize creates a fresh master-key record for a new vault:
	// random salt, Argon2id derivation, verification token. The derived
	// key is returned alongside the record so that first-run unlock does
	// not need a second (deliberately slow) derivation.
	// Fails with ErrWeakMasterPassword if the password is empty.
	Initialize(masterPassword string) (models.MasterKeyRecord, []byte, error)

	// Derive re-runs the derivation recorded in rec with the stored salt
	// and cost parameters. Deterministic for identical inputs.
	Derive(masterPassword string, rec models.MasterKeyRecord) ([]byte, error)

	// Verify derives the key and compares the recomputed verification
	// token against the stored one in constant time. On success the
	// derived key is returned so the caller can keep it for the session;
	// on mismatch the key is zeroed before returning.
	Verify(masterPassword string, rec models.MasterKeyRecord) ([]byte, bool, error)
}

// CipherBox performs authenticated encryption of opaque byte payloads with
// AES-256-GCM. A fresh random nonce is generated inside Encrypt on every
// call; nonce reuse under one key is prevented here, not by caller
// discipline.
type CipherBox interface {
	Encrypt(key, plaintext []byte) (models.EncryptedPayload, error)

	// Decrypt fails with ErrTamperedData on any authentication failure and
	// never returns partially decrypted bytes.
	Decrypt(key []byte, payload models.EncryptedPayload) ([]byte, error)
}

// FieldCodec serializes structured secret fields into a canonical byte form
// and encrypts them, and reverses the process on read.
type FieldCodec interface {
	EncodeSecret(secret models.SecretFields, key []byte) (models.EncryptedPayload, error)
	DecodeSecret(payload models.EncryptedPayload, key []byte) (models.SecretFields, error)

	// EncodeValue and DecodeValue handle single string values
	// (custom-field contents) through the same canonical encoding.
	EncodeValue(value string, key []byte) (models.EncryptedPayload, error)
	DecodeValue(payload models.EncryptedPayload, key []byte) (string, error)
}
