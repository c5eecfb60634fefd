// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package models

import (
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16
)

// ErrInvalidBlob is returned when a stored blob cannot be split back into
// nonce, ciphertext and tag.
var ErrInvalidBlob = errors.New("invalid encrypted blob")

type (
	// CipheredBlob is the storage representation of an [EncryptedPayload]:
	// base64(nonce ‖ ciphertext ‖ tag). The database treats it as an opaque
	// string and never sees plaintext.
	CipheredBlob string
)

// EncryptedPayload is the value object produced by every field encryption.
// The nonce is generated fresh for each encryption under the same key; a
// (key, nonce) pair is never reused.
type EncryptedPayload struct {
	// Nonce is the unique per-encryption value, NonceSize bytes.
	Nonce []byte

	// Ciphertext is the encrypted field content.
	Ciphertext []byte

	// Tag is the AEAD authentication tag, TagSize bytes, bound to both
	// nonce and ciphertext.
	Tag []byte
}

// Blob serializes the payload into its storage form:
// base64(nonce ‖ ciphertext ‖ tag).
func (p EncryptedPayload) Blob() CipheredBlob {
	buf := make([]byte, 0, len(p.Nonce)+len(p.Ciphertext)+len(p.Tag))
	buf = append(buf, p.Nonce...)
	buf = append(buf, p.Ciphertext...)
	buf = append(buf, p.Tag...)
	return CipheredBlob(base64.StdEncoding.EncodeToString(buf))
}

// ParseBlob reverses [EncryptedPayload.Blob]. It fails with a wrapped
// [ErrInvalidBlob] if the blob is not valid base64 or is too short to hold a
// nonce and a tag.
func ParseBlob(blob CipheredBlob) (EncryptedPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(string(blob))
	if err != nil {
		return EncryptedPayload{}, fmt.Errorf("%w: %w", ErrInvalidBlob, err)
	}

	if len(raw) < NonceSize+TagSize {
		return EncryptedPayload{}, fmt.Errorf("%w: %d bytes is too short", ErrInvalidBlob, len(raw))
	}

	return EncryptedPayload{
		Nonce:      raw[:NonceSize],
		Ciphertext: raw[NonceSize : len(raw)-TagSize],
		Tag:        raw[len(raw)-TagSize:],
	}, nil
}
