package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/utils"
	"github.com/MKhiriev/fuel-station-dashboard/models"
)

// relayMessage is the JSON body posted to the mail relay.
type relayMessage struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type httpMailDispatcher struct {
	client   *utils.HTTPClient
	endpoint string
	from     string

	logger *logger.Logger
}

// NewHTTPMailDispatcher constructs a [MailDispatcher] that posts every message
// as JSON to cfg.RelayURL. A non-empty cfg.RelayToken is sent as a bearer
// token.
func NewHTTPMailDispatcher(cfg config.Mail, logger *logger.Logger) (MailDispatcher, error) {
	endpoint, err := normalizeRelayURL(cfg.RelayURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid relay url: %w", ErrMailTransportNotConfigured, err)
	}

	client := utils.NewHTTPClient(cfg.Timeout)
	if cfg.RelayToken != "" {
		client.SetAuthToken(cfg.RelayToken)
	}

	return &httpMailDispatcher{
		client:   client,
		endpoint: endpoint,
		from:     cfg.From,
		logger:   logger,
	}, nil
}

func normalizeRelayURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

func (h *httpMailDispatcher) Send(ctx context.Context, mail models.Mail) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(relayMessage{
			From:    h.from,
			To:      mail.To,
			Subject: mail.Subject,
			Text:    mail.Text,
		}).
		Post(h.endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMailTransportUnavailable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Str("to", mail.To).Int("status", resp.StatusCode()).Msg("mail accepted by relay")
	return nil
}
