package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableRedis points at a port nothing listens on.
func unreachableRedis(t *testing.T) *RedisLoginAttemptStorage {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	s := newRedisLoginAttemptStorage(client, time.Minute, logger.Nop())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoginFailuresKey(t *testing.T) {
	assert.Equal(t, "login_failures:admin@station.test", loginFailuresKey("  Admin@Station.TEST "))
}

func TestNewRedisLoginAttemptStorage_PingFails(t *testing.T) {
	cfg := config.Limiter{RedisAddress: "127.0.0.1:1", MaxFailures: 5, Window: time.Minute}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s, err := NewRedisLoginAttemptStorage(ctx, cfg, logger.Nop())
	require.Error(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrLoginAttemptsUnavailable)
}

func TestRedisLoginAttemptStorage_Unavailable(t *testing.T) {
	s := unreachableRedis(t)
	ctx := context.Background()

	_, err := s.Failures(ctx, "admin@station.test")
	assert.ErrorIs(t, err, ErrLoginAttemptsUnavailable)

	_, err = s.RegisterFailure(ctx, "admin@station.test")
	assert.ErrorIs(t, err, ErrLoginAttemptsUnavailable)

	err = s.Reset(ctx, "admin@station.test")
	assert.ErrorIs(t, err, ErrLoginAttemptsUnavailable)
}

func TestNewStorages_LimiterDisabled(t *testing.T) {
	repo, _ := newTestCredentialRepo(t)

	storages, err := NewStorages(context.Background(), repo.db, config.Limiter{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, storages.CredentialRepository)
	assert.Nil(t, storages.LoginAttemptStorage)
	assert.NoError(t, storages.Close())
}
