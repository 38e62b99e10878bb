package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/sethvargo/go-retry"
)

type retryingMailDispatcher struct {
	next       MailDispatcher
	maxRetries uint64
	baseDelay  time.Duration

	logger *logger.Logger
}

// WithRetries wraps next so that temporary failures are retried up to
// maxRetries more times with exponential backoff starting at baseDelay.
// Rejected messages and configuration errors are returned immediately.
// With maxRetries == 0, next is returned unchanged.
func WithRetries(next MailDispatcher, maxRetries uint64, baseDelay time.Duration, logger *logger.Logger) MailDispatcher {
	if maxRetries == 0 {
		return next
	}

	return &retryingMailDispatcher{
		next:       next,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		logger:     logger,
	}
}

func (r *retryingMailDispatcher) Send(ctx context.Context, mail models.Mail) error {
	backoff := retry.WithMaxRetries(r.maxRetries, retry.NewExponential(r.baseDelay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := r.next.Send(ctx, mail)
		if err == nil {
			return nil
		}

		if errors.Is(err, ErrMailRejected) || errors.Is(err, ErrMailTransportNotConfigured) {
			return err
		}

		r.logger.Warn().Err(err).Int("attempt", attempt).Str("to", mail.To).Msg("mail dispatch failed, retrying")
		return retry.RetryableError(err)
	})
}
