package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/models"
)

// NewMailDispatcher builds the [MailDispatcher] selected by cfg.Transport,
// bounded by cfg.Timeout per attempt and wrapped with retries when
// cfg.MaxRetries is positive.
func NewMailDispatcher(cfg config.Mail, logger *logger.Logger) (MailDispatcher, error) {
	var (
		dispatcher MailDispatcher
		err        error
	)

	switch cfg.Transport {
	case config.MailTransportSMTP:
		dispatcher, err = NewSMTPMailDispatcher(cfg, logger)
	case config.MailTransportHTTP:
		dispatcher, err = NewHTTPMailDispatcher(cfg, logger)
	case config.MailTransportAMQP:
		dispatcher, err = NewAMQPMailDispatcher(cfg, logger)
	case config.MailTransportLog, "":
		dispatcher = NewLogMailDispatcher(logger)
	default:
		return nil, fmt.Errorf("%w: unknown transport %q", ErrMailTransportNotConfigured, cfg.Transport)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Timeout > 0 {
		dispatcher = &timeoutMailDispatcher{next: dispatcher, timeout: cfg.Timeout}
	}

	logger.Info().
		Str("transport", cfg.Transport).
		Uint64("max_retries", cfg.MaxRetries).
		Msg("mail dispatcher configured")

	return WithRetries(dispatcher, cfg.MaxRetries, cfg.RetryBaseDelay, logger), nil
}

type timeoutMailDispatcher struct {
	next    MailDispatcher
	timeout time.Duration
}

func (t *timeoutMailDispatcher) Send(ctx context.Context, mail models.Mail) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	return t.next.Send(ctx, mail)
}

// Close releases resources of dispatchers that hold a connection.
func Close(dispatcher MailDispatcher) error {
	switch d := dispatcher.(type) {
	case *retryingMailDispatcher:
		return Close(d.next)
	case *timeoutMailDispatcher:
		return Close(d.next)
	case interface{ Close() error }:
		return d.Close()
	default:
		return nil
	}
}
