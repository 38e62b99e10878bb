package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/redis/go-redis/v9"
)

const loginFailuresKeyPrefix = "login_failures:"

// registerFailureScript increments the counter and arms its expiry only on
// the first failure, so the window starts with that failure.
var registerFailureScript = redis.NewScript(`
	local n = redis.call('INCR', KEYS[1])
	if n == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return n
`)

// RedisLoginAttemptStorage is the redis-backed [LoginAttemptStorage].
type RedisLoginAttemptStorage struct {
	client *redis.Client
	window time.Duration
	logger *logger.Logger
}

// NewRedisLoginAttemptStorage connects to the redis server named in cfg and
// pings it.
func NewRedisLoginAttemptStorage(ctx context.Context, cfg config.Limiter, log *logger.Logger) (*RedisLoginAttemptStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisLoginAttemptStorage").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrLoginAttemptsUnavailable, err)
	}
	log.Info().Str("func", "NewRedisLoginAttemptStorage").Msg("connected to redis successfully")

	return newRedisLoginAttemptStorage(client, cfg.Window, log), nil
}

func newRedisLoginAttemptStorage(client *redis.Client, window time.Duration, log *logger.Logger) *RedisLoginAttemptStorage {
	return &RedisLoginAttemptStorage{
		client: client,
		window: window,
		logger: log,
	}
}

// Failures returns the number of failed logins for email in the current
// window. A missing counter reads as zero.
func (s *RedisLoginAttemptStorage) Failures(ctx context.Context, email string) (int64, error) {
	n, err := s.client.Get(ctx, loginFailuresKey(email)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisLoginAttemptStorage.Failures").Msg("error reading login failures")
		return 0, fmt.Errorf("%w: %w", ErrLoginAttemptsUnavailable, err)
	}

	return n, nil
}

// RegisterFailure increments the failure counter of email and returns the new
// value.
func (s *RedisLoginAttemptStorage) RegisterFailure(ctx context.Context, email string) (int64, error) {
	n, err := registerFailureScript.Run(ctx, s.client, []string{loginFailuresKey(email)}, s.window.Milliseconds()).Int64()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisLoginAttemptStorage.RegisterFailure").Msg("error registering login failure")
		return 0, fmt.Errorf("%w: %w", ErrLoginAttemptsUnavailable, err)
	}

	return n, nil
}

// Reset clears the failure counter of email.
func (s *RedisLoginAttemptStorage) Reset(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, loginFailuresKey(email)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisLoginAttemptStorage.Reset").Msg("error resetting login failures")
		return fmt.Errorf("%w: %w", ErrLoginAttemptsUnavailable, err)
	}

	return nil
}

// Close releases the redis connection pool.
func (s *RedisLoginAttemptStorage) Close() error {
	return s.client.Close()
}

func loginFailuresKey(email string) string {
	return loginFailuresKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}
