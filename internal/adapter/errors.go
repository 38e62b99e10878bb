package adapter

import "errors"

var (
	// ErrMailTransportNotConfigured is returned when the selected transport
	// lacks the settings it needs (host, relay url, broker url).
	ErrMailTransportNotConfigured = errors.New("mail transport is not configured")
	// ErrMailRejected is returned when the transport permanently refused the
	// message (relay 4xx, invalid recipient). Such failures are not retried.
	ErrMailRejected = errors.New("mail rejected by transport")
	// ErrMailTransportUnavailable is returned for temporary failures
	// (connection refused, relay 5xx) that are worth retrying.
	ErrMailTransportUnavailable = errors.New("mail transport unavailable")
)
