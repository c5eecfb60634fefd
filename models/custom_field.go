// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package models

import "time"

// CustomField is the decrypted view of a user-defined field attached to an
// account. A custom field is meaningless without its account and is deleted
// together with it.
type CustomField struct {
	// ID is the unique identifier of the field (UUID).
	ID string

	// AccountID references the owning account.
	AccountID string

	// Name is the plaintext field label.
	Name string

	// Value is the confidential field content, decrypted for display.
	Value string

	// CreatedAt is the timestamp when the field was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time
}

// CustomFieldRecord is the persisted form of a [CustomField]; the value is
// stored encrypted.
type CustomFieldRecord struct {
	ID        string
	AccountID string
	Name      string
	Value     CipheredBlob
	CreatedAt time.Time
	UpdatedAt time.Time
}
