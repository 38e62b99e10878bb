package adapter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailDispatcher is a hand mock with a function field.
type fakeMailDispatcher struct {
	sendFunc func(ctx context.Context, mail models.Mail) error
	calls    int
}

func (f *fakeMailDispatcher) Send(ctx context.Context, mail models.Mail) error {
	f.calls++
	return f.sendFunc(ctx, mail)
}

func TestWithRetries_ZeroRetriesReturnsNext(t *testing.T) {
	next := &fakeMailDispatcher{sendFunc: func(context.Context, models.Mail) error { return nil }}
	assert.Same(t, next, WithRetries(next, 0, time.Millisecond, logger.Nop()))
}

func TestWithRetries_RetriesTemporaryFailures(t *testing.T) {
	next := &fakeMailDispatcher{}
	next.sendFunc = func(context.Context, models.Mail) error {
		if next.calls < 3 {
			return fmt.Errorf("%w: connection reset", ErrMailTransportUnavailable)
		}
		return nil
	}

	d := WithRetries(next, 5, time.Millisecond, logger.Nop())
	require.NoError(t, d.Send(context.Background(), resetMail))
	assert.Equal(t, 3, next.calls)
}

func TestWithRetries_GivesUpAfterMaxRetries(t *testing.T) {
	next := &fakeMailDispatcher{sendFunc: func(context.Context, models.Mail) error {
		return ErrMailTransportUnavailable
	}}

	d := WithRetries(next, 2, time.Millisecond, logger.Nop())
	err := d.Send(context.Background(), resetMail)

	assert.ErrorIs(t, err, ErrMailTransportUnavailable)
	assert.Equal(t, 3, next.calls, "one attempt plus two retries")
}

func TestWithRetries_DoesNotRetryRejected(t *testing.T) {
	next := &fakeMailDispatcher{sendFunc: func(context.Context, models.Mail) error {
		return fmt.Errorf("%w: 550 mailbox unavailable", ErrMailRejected)
	}}

	d := WithRetries(next, 5, time.Millisecond, logger.Nop())
	err := d.Send(context.Background(), resetMail)

	assert.ErrorIs(t, err, ErrMailRejected)
	assert.Equal(t, 1, next.calls)
}

func TestWithRetries_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	next := &fakeMailDispatcher{sendFunc: func(context.Context, models.Mail) error {
		cancel()
		return ErrMailTransportUnavailable
	}}

	d := WithRetries(next, 5, time.Hour, logger.Nop())
	err := d.Send(ctx, resetMail)

	assert.Error(t, err)
	assert.Equal(t, 1, next.calls)
}
