package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
)

// Storages groups every storage the services depend on.
// LoginAttemptStorage is nil when the login throttle is disabled.
type Storages struct {
	CredentialRepository CredentialRepository
	LoginAttemptStorage  LoginAttemptStorage

	closers []func() error
}

// NewStorages wires the credential repository on db and, when the limiter is
// enabled in cfg, the redis login attempt storage.
func NewStorages(ctx context.Context, db *DB, cfg config.Limiter, log *logger.Logger) (*Storages, error) {
	storages := &Storages{
		CredentialRepository: NewCredentialRepository(db, log),
	}

	if cfg.Enabled() {
		attempts, err := NewRedisLoginAttemptStorage(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		storages.LoginAttemptStorage = attempts
		storages.closers = append(storages.closers, attempts.Close)
	}

	return storages, nil
}

// Close releases the connections owned by the storages.
func (s *Storages) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}
