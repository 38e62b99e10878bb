package adapter

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/models"
)

type smtpMailDispatcher struct {
	host     string
	addr     string
	from     string
	username string
	password string
	secure   bool

	logger *logger.Logger
}

// NewSMTPMailDispatcher constructs a [MailDispatcher] delivering through an
// SMTP server. With cfg.Secure the connection uses implicit TLS; otherwise
// STARTTLS is negotiated when the server offers it. Credentials are sent only
// when a username is configured.
func NewSMTPMailDispatcher(cfg config.Mail, logger *logger.Logger) (MailDispatcher, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, fmt.Errorf("%w: smtp host and port are required", ErrMailTransportNotConfigured)
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	if from == "" {
		return nil, fmt.Errorf("%w: smtp from address is required", ErrMailTransportNotConfigured)
	}

	return &smtpMailDispatcher{
		host:     cfg.Host,
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from:     from,
		username: cfg.Username,
		password: cfg.Password,
		secure:   cfg.Secure,
		logger:   logger,
	}, nil
}

func (s *smtpMailDispatcher) Send(ctx context.Context, mail models.Mail) error {
	conn, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %w", ErrMailTransportUnavailable, s.addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("%w: smtp handshake: %w", ErrMailTransportUnavailable, err)
	}
	defer client.Close()

	if !s.secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err = client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
				return fmt.Errorf("%w: starttls: %w", ErrMailTransportUnavailable, err)
			}
		}
	}

	if s.username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", s.username, s.password, s.host)
			if err = client.Auth(auth); err != nil {
				return fmt.Errorf("%w: smtp auth: %w", ErrMailRejected, err)
			}
		}
	}

	if err = client.Mail(s.from); err != nil {
		return classifySMTPError("mail from", err)
	}
	if err = client.Rcpt(mail.To); err != nil {
		return classifySMTPError("rcpt to", err)
	}

	w, err := client.Data()
	if err != nil {
		return classifySMTPError("data", err)
	}
	if _, err = w.Write(buildTextMessage(s.from, mail, time.Now())); err != nil {
		return fmt.Errorf("%w: writing message: %w", ErrMailTransportUnavailable, err)
	}
	if err = w.Close(); err != nil {
		return classifySMTPError("data", err)
	}

	s.logger.Debug().Str("to", mail.To).Str("subject", mail.Subject).Msg("mail accepted by smtp server")

	return client.Quit()
}

func (s *smtpMailDispatcher) dial(ctx context.Context) (net.Conn, error) {
	dialer := &net.Dialer{}
	if s.secure {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: s.host}}
		return tlsDialer.DialContext(ctx, "tcp", s.addr)
	}
	return dialer.DialContext(ctx, "tcp", s.addr)
}

// classifySMTPError maps permanent 5xx replies to ErrMailRejected and
// everything else to ErrMailTransportUnavailable.
func classifySMTPError(stage string, err error) error {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) && protoErr.Code >= 500 {
		return fmt.Errorf("%w: %s: %w", ErrMailRejected, stage, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrMailTransportUnavailable, stage, err)
}

// buildTextMessage renders a plain-text RFC 5322 message.
func buildTextMessage(from string, mail models.Mail, now time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + mail.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", mail.Subject) + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(mail.Text, "\r\n", "\n"), "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
