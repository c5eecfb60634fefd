package models

import "time"

// AccountUpdate is the storage-facing partial update for an account row.
// Nil fields are left untouched. Secret, when set, is a freshly encrypted
// payload — a previous payload (and its nonce) is never written back.
type AccountUpdate struct {
	ID        string
	Title     *string
	Username  *string
	Secret    *CipheredBlob
	UpdatedAt time.Time
}

// CustomFieldUpdate is the storage-facing partial update for a custom-field
// row.
type CustomFieldUpdate struct {
	ID        string
	Name      *string
	Value     *CipheredBlob
	UpdatedAt time.Time
}
