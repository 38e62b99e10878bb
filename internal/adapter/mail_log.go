package adapter

import (
	"context"

	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/models"
)

type logMailDispatcher struct {
	logger *logger.Logger
}

// NewLogMailDispatcher constructs a [MailDispatcher] that only writes the
// message to the log. It is meant for local development where no mail server
// is available; at debug level the reset link can be copied from the log.
func NewLogMailDispatcher(logger *logger.Logger) MailDispatcher {
	return &logMailDispatcher{logger: logger}
}

func (l *logMailDispatcher) Send(ctx context.Context, mail models.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.logger.Info().
		Str("to", mail.To).
		Str("subject", mail.Subject).
		Msg("mail not sent, log transport in use")

	// the text carries a live reset token
	l.logger.Debug().
		Str("to", mail.To).
		Str("text", mail.Text).
		Msg("mail text")
	return nil
}
