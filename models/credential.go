// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is the persisted login record of a dashboard administrator.
// PasswordHash always holds a one-way hash and is never serialized.
type Credential struct {
	// ID is the opaque identifier assigned at creation (UUIDv7). Immutable.
	ID string `json:"id"`

	// Email is the lookup key for login, registration and password reset.
	// It is stored trimmed and lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt-encoded password. Never the plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is set once when the record is inserted.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every mutation of the record.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}

// CredentialFilter narrows a credential listing.
// Zero values mean "no constraint".
type CredentialFilter struct {
	// Email keeps only records whose email contains this substring.
	Email string

	// Limit caps the number of returned records.
	Limit uint64

	// Offset skips the first Offset records of the ordered result.
	Offset uint64
}
