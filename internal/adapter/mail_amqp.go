package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpMailDispatcher hands messages to a durable broker queue consumed by a
// separate mail worker. The connection is opened on first use and reopened
// after the broker drops it.
type amqpMailDispatcher struct {
	url   string
	queue string
	from  string

	mu   sync.Mutex
	conn *amqp.Connection

	logger *logger.Logger
}

// NewAMQPMailDispatcher constructs a [MailDispatcher] publishing persistent
// JSON messages to cfg.Queue on the broker at cfg.BrokerURL.
func NewAMQPMailDispatcher(cfg config.Mail, logger *logger.Logger) (MailDispatcher, error) {
	if cfg.BrokerURL == "" {
		return nil, fmt.Errorf("%w: broker url is required", ErrMailTransportNotConfigured)
	}
	if _, err := amqp.ParseURI(cfg.BrokerURL); err != nil {
		return nil, fmt.Errorf("%w: invalid broker url: %w", ErrMailTransportNotConfigured, err)
	}

	queue := cfg.Queue
	if queue == "" {
		queue = config.DefaultMailQueue
	}

	return &amqpMailDispatcher{
		url:    cfg.BrokerURL,
		queue:  queue,
		from:   cfg.From,
		logger: logger,
	}, nil
}

func (a *amqpMailDispatcher) Send(ctx context.Context, mail models.Mail) error {
	publishing, err := newMailPublishing(a.from, mail, time.Now())
	if err != nil {
		return err
	}

	ch, err := a.channel()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMailTransportUnavailable, err)
	}
	defer func() { _ = ch.Close() }()

	if _, err = ch.QueueDeclare(
		a.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("%w: queue declare: %w", ErrMailTransportUnavailable, err)
	}

	if err = ch.Confirm(false); err != nil {
		return fmt.Errorf("%w: confirm mode: %w", ErrMailTransportUnavailable, err)
	}

	confirmation, err := ch.PublishWithDeferredConfirmWithContext(ctx,
		"",      // default exchange
		a.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		publishing,
	)
	if err != nil {
		return fmt.Errorf("%w: publish: %w", ErrMailTransportUnavailable, err)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: waiting for confirm: %w", ErrMailTransportUnavailable, err)
	}
	if !acked {
		return fmt.Errorf("%w: broker nacked message", ErrMailTransportUnavailable)
	}

	a.logger.Debug().Str("to", mail.To).Str("queue", a.queue).Msg("mail queued")
	return nil
}

func (a *amqpMailDispatcher) channel() (*amqp.Channel, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.conn == nil || a.conn.IsClosed() {
		conn, err := amqp.Dial(a.url)
		if err != nil {
			return nil, fmt.Errorf("dial broker: %w", err)
		}
		a.conn = conn
	}

	ch, err := a.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	return ch, nil
}

// Close releases the broker connection.
func (a *amqpMailDispatcher) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.conn == nil || a.conn.IsClosed() {
		return nil
	}
	return a.conn.Close()
}

func newMailPublishing(from string, mail models.Mail, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(relayMessage{
		From:    from,
		To:      mail.To,
		Subject: mail.Subject,
		Text:    mail.Text,
	})
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("error encoding mail: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now.UTC(),
		Body:         body,
	}, nil
}
