// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package models

import "time"

// SecretFields groups every confidential attribute of an account. The whole
// struct is serialized to canonical JSON and encrypted as a single payload;
// none of these fields ever reaches storage in plain form.
//
// Version is written into the ciphertext so that a future change to the
// shape of the struct can be detected when decoding old records.
type SecretFields struct {
	Version        int        `json:"v"`
	Password       string     `json:"password"`
	URL            string     `json:"url,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}

// SecretFieldsVersion is the current serialization version of [SecretFields].
const SecretFieldsVersion = 1

// Account is the decrypted, service-facing view of a stored account. It
// exists only in memory, for the immediate caller; it is never persisted in
// this form.
type Account struct {
	// ID is the unique identifier of the account (UUID).
	ID string

	// Title is the plaintext display label.
	Title string

	// Username is plaintext-acceptable metadata.
	Username string

	// Secret holds the confidential fields, decrypted for display.
	Secret SecretFields

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time
}

// AccountRecord is the persisted form of an [Account]. The secret travels as
// an opaque [CipheredBlob]; the storage layer never sees it decrypted.
type AccountRecord struct {
	ID        string
	Title     string
	Username  string
	Secret    CipheredBlob
	CreatedAt time.Time
	UpdatedAt time.Time
}
