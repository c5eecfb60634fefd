// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package crypto

import (
	"encoding/json"
	"fmt"

	"github.com/akarpov/passvault/models"
)

// fieldCodec is the private implementation of [FieldCodec].
//
// Canonical form is JSON: Go marshals struct fields in declaration order and
// sorts map keys, so the byte encoding is deterministic and does not depend
// on container iteration order.
type fieldCodec struct {
	box CipherBox
}

// NewFieldCodec constructs a [FieldCodec] over the given [CipherBox].
func NewFieldCodec(box CipherBox) FieldCodec {
	return &fieldCodec{box: box}
}

// EncodeSecret implements [FieldCodec]. The serialization version is
// stamped into the plaintext before encryption so a decoder can detect a
// shape mismatch after a future format change.
func (f *fieldCodec) EncodeSecret(secret models.SecretFields, key []byte) (models.EncryptedPayload, error) {
	secret.Version = models.SecretFieldsVersion

	plaintext, err := json.Marshal(secret)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("marshal secret fields: %w", err)
	}

	return f.box.Encrypt(key, plaintext)
}

// DecodeSecret implements [FieldCodec]. A decryption failure propagates as
// ErrTamperedData; bytes that authenticated but do not parse back into the
// expected structure are ErrMalformedRecord.
func (f *fieldCodec) DecodeSecret(payload models.EncryptedPayload, key []byte) (models.SecretFields, error) {
	plaintext, err := f.box.Decrypt(key, payload)
	if err != nil {
		return models.SecretFields{}, err
	}

	var secret models.SecretFields
	if err := json.Unmarshal(plaintext, &secret); err != nil {
		return models.SecretFields{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if secret.Version == 0 || secret.Version > models.SecretFieldsVersion {
		return models.SecretFields{}, fmt.Errorf("%w: unsupported version %d", ErrMalformedRecord, secret.Version)
	}

	return secret, nil
}

// EncodeValue implements [FieldCodec] for single string values.
func (f *fieldCodec) EncodeValue(value string, key []byte) (models.EncryptedPayload, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("marshal value: %w", err)
	}

	return f.box.Encrypt(key, plaintext)
}

// DecodeValue implements [FieldCodec] for single string values.
func (f *fieldCodec) DecodeValue(payload models.EncryptedPayload, key []byte) (string, error) {
	plaintext, err := f.box.Decrypt(key, payload)
	if err != nil {
		return "", err
	}

	var value string
	if err := json.Unmarshal(plaintext, &value); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	return value, nil
}
