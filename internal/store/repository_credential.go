package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/jackc/pgerrcode"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository] over the "credentials" table.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCredential inserts credential and returns the stored row.
//
// Error handling:
//   - unique_violation (23505) on the email index → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var created models.Credential
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, createCredential,
			credential.ID, credential.Email, credential.PasswordHash, credential.CreatedAt, credential.UpdatedAt)
		return scanCredential(row, &created)
	})
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error inserting credential")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Credential{}, ErrEmailAlreadyExists
		}
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindCredentialByEmail returns the credential holding email or
// [ErrCredentialNotFound].
func (r *credentialRepository) FindCredentialByEmail(ctx context.Context, email string) (models.Credential, error) {
	return r.findOne(ctx, "*credentialRepository.FindCredentialByEmail", findCredentialByEmail, email)
}

// FindCredentialByID returns the credential with id or [ErrCredentialNotFound].
func (r *credentialRepository) FindCredentialByID(ctx context.Context, id string) (models.Credential, error) {
	return r.findOne(ctx, "*credentialRepository.FindCredentialByID", findCredentialByID, id)
}

func (r *credentialRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var found models.Credential
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		return scanCredential(r.db.QueryRowContext(ctx, query, arg), &found)
	})
	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Credential{}, ErrCredentialNotFound
	default:
		log.Err(err).Str("func", funcName).Msg("error finding credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// UpdatePasswordHash replaces the stored hash of credential id and stamps
// updatedAt. Concurrent updates are last-write-wins.
func (r *credentialRepository) UpdatePasswordHash(ctx context.Context, id, passwordHash string, updatedAt time.Time) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordHashQuery(id, passwordHash, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.UpdatePasswordHash").Msg("error building update query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Credential
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return scanCredential(r.db.QueryRowContext(ctx, query, args...), &updated)
	})
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Credential{}, ErrCredentialNotFound
	default:
		log.Err(err).Str("func", "*credentialRepository.UpdatePasswordHash").Msg("error updating password hash")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// ListCredentials returns the credentials matching filter, newest first.
func (r *credentialRepository) ListCredentials(ctx context.Context, filter models.CredentialFilter) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCredentialsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credentials []models.Credential
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		credentials = make([]models.Credential, 0)
		for rows.Next() {
			var c models.Credential
			if err := scanCredential(rows, &c); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			credentials = append(credentials, c)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error listing credentials")
		if errors.Is(err, ErrScanningRow) || errors.Is(err, ErrScanningRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return credentials, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner, c *models.Credential) error {
	return row.Scan(&c.ID, &c.Email, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt)
}
