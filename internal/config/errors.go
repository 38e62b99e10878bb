package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a malformed listen address or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a bcrypt cost out of range or a non-positive token TTL).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidMailConfigs indicates a mail transport that is unknown or
	// lacks the settings it needs.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidLimiterConfigs indicates a login throttle with a redis
	// address but no usable failure budget or window.
	ErrInvalidLimiterConfigs = errors.New("invalid limiter configuration")
)
