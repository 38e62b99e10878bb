// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound transport abstractions of the dashboard
// server.
//
// The primary abstraction is [MailDispatcher], which decouples the
// password-reset flow from the way mail actually leaves the process. The
// package ships SMTP, HTTP relay, AMQP broker and log-only implementations,
// selected by [NewMailDispatcher] from configuration, and an optional
// retrying decorator.
//
// Error values defined in errors.go let callers use [errors.Is] for
// transport-agnostic handling (e.g. [ErrMailRejected] for a permanent refusal).
package adapter

import (
	"context"

	"github.com/MKhiriev/fuel-station-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mail_dispatcher_mock.go -package=mock

// MailDispatcher delivers a single outbound message.
//
// Send returns once the transport has accepted the message (SMTP DATA
// accepted, relay 2xx, broker publish confirmed). Implementations must honor
// ctx cancellation and be safe for concurrent use.
type MailDispatcher interface {
	Send(ctx context.Context, mail models.Mail) error
}
