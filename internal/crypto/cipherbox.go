// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/akarpov/passvault/models"
)

// cipherBox is the private implementation of [CipherBox].
type cipherBox struct{}

// NewCipherBox constructs an AES-256-GCM [CipherBox].
func NewCipherBox() CipherBox {
	return &cipherBox{}
}

// Encrypt implements [CipherBox]. It reads a fresh 12-byte nonce from the
// OS CSPRNG for every call and seals plaintext with AES-256-GCM. The GCM
// output (ciphertext ‖ tag) is split so the payload carries the tag
// explicitly.
func (c *cipherBox) Encrypt(key, plaintext []byte) (models.EncryptedPayload, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)

	return models.EncryptedPayload{
		Nonce:      nonce,
		Ciphertext: sealed[:len(sealed)-models.TagSize],
		Tag:        sealed[len(sealed)-models.TagSize:],
	}, nil
}

// Decrypt implements [CipherBox]. Any authentication failure — wrong key,
// flipped ciphertext bit, corrupted nonce or tag — surfaces as the same
// ErrTamperedData so the error gives no oracle about which part failed.
func (c *cipherBox) Decrypt(key []byte, payload models.EncryptedPayload) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// GCM panics on a wrong-length nonce; a truncated nonce or tag is
	// tampering like any other.
	if len(payload.Nonce) != gcm.NonceSize() || len(payload.Tag) != models.TagSize {
		return nil, ErrTamperedData
	}

	sealed := make([]byte, 0, len(payload.Ciphertext)+len(payload.Tag))
	sealed = append(sealed, payload.Ciphertext...)
	sealed = append(sealed, payload.Tag...)

	plaintext, err := gcm.Open(nil, payload.Nonce, sealed, nil)
	if err != nil {
		return nil, ErrTamperedData
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
