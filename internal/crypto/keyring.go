// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/akarpov/passvault/models"
)

// verifyDomainTag separates the verification token from every other use of
// the derived key. SHA-256(key ‖ tag) is one-way, so a leaked token cannot
// be used to decrypt vault data.
const verifyDomainTag = "passvault/verify/v1"

const saltSize = 16

// keyring is the private implementation of [Keyring].
type keyring struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyring constructs a [Keyring] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyring() Keyring {
	return &keyring{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// Initialize implements [Keyring]. It reads a 16-byte salt from the OS
// CSPRNG, derives the vault key with Argon2id, computes the verification
// token and returns the record that must be persisted for all future
// unlocks, together with the freshly derived key.
func (k *keyring) Initialize(masterPassword string) (models.MasterKeyRecord, []byte, error) {
	if masterPassword == "" {
		return models.MasterKeyRecord{}, nil, ErrWeakMasterPassword
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.MasterKeyRecord{}, nil, fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(masterPassword), salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)

	rec := models.MasterKeyRecord{
		Salt:              salt,
		VerificationToken: verificationToken(key),
		Algorithm:         models.AlgorithmArgon2id,
		TimeCost:          k.argonTime,
		MemoryKiB:         k.argonMemory,
		Threads:           k.argonThreads,
		KeyLength:         k.argonKeyLen,
	}

	return rec, key, nil
}

// Derive implements [Keyring]. It re-runs the derivation with the salt and
// cost parameters stored in rec, not with the receiver's defaults, so that
// vaults created under older parameters keep working after a tuning bump.
func (k *keyring) Derive(masterPassword string, rec models.MasterKeyRecord) ([]byte, error) {
	if rec.Algorithm != models.AlgorithmArgon2id {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, rec.Algorithm)
	}

	key := argon2.IDKey([]byte(masterPassword), rec.Salt, rec.TimeCost, rec.MemoryKiB, rec.Threads, rec.KeyLength)
	return key, nil
}

// Verify implements [Keyring]. The token comparison runs in constant time
// and never short-circuits on the first mismatched byte. On mismatch the
// derived key is overwritten before returning so it cannot outlive the
// failed attempt.
func (k *keyring) Verify(masterPassword string, rec models.MasterKeyRecord) ([]byte, bool, error) {
	key, err := k.Derive(masterPassword, rec)
	if err != nil {
		return nil, false, err
	}

	token := verificationToken(key)
	if subtle.ConstantTimeCompare(token, rec.VerificationToken) != 1 {
		Zero(key)
		return nil, false, nil
	}

	return key, true, nil
}

// verificationToken computes SHA-256(key ‖ verifyDomainTag). The token
// detects a wrong master password before any decryption is attempted, and
// being a one-way digest it is never invertible back to the key.
func verificationToken(key []byte) []byte {
	h := sha256.New()
	h.Write(key)
	h.Write([]byte(verifyDomainTag))
	return h.Sum(nil)
}

// Zero overwrites every byte of buf. Used to scrub key material before a
// buffer goes out of scope.
func Zero(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
