// Package store holds the persistence layer of the dashboard server: the
// PostgreSQL credential repository and the redis-backed login attempt
// counter.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository persists credential records keyed by id and by
// (unique, lower-cased) email.
type CredentialRepository interface {
	// CreateCredential inserts a new record and returns it as stored.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)

	// FindCredentialByEmail returns the record with the given email or
	// ErrCredentialNotFound.
	FindCredentialByEmail(ctx context.Context, email string) (models.Credential, error)

	// FindCredentialByID returns the record with the given id or
	// ErrCredentialNotFound.
	FindCredentialByID(ctx context.Context, id string) (models.Credential, error)

	// UpdatePasswordHash replaces the password hash of the record with the
	// given id, stamps updatedAt, and returns the updated record.
	// Returns ErrCredentialNotFound when no record has that id.
	UpdatePasswordHash(ctx context.Context, id, passwordHash string, updatedAt time.Time) (models.Credential, error)

	// ListCredentials returns records matching filter, newest first.
	ListCredentials(ctx context.Context, filter models.CredentialFilter) ([]models.Credential, error)
}

// LoginAttemptStorage counts failed logins per email inside a fixed window
// that starts with the first failure.
type LoginAttemptStorage interface {
	// Failures returns the current failure count for email.
	Failures(ctx context.Context, email string) (int64, error)

	// RegisterFailure increments the failure count for email and returns the
	// new value. The window starts with the first failure.
	RegisterFailure(ctx context.Context, email string) (int64, error)

	// Reset clears the failure count for email.
	Reset(ctx context.Context, email string) error
}
