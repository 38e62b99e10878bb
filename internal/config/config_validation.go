// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied to a merged configuration.
const (
	DefaultTokenIssuer      = "fuel-station-dashboard"
	DefaultSessionTokenTTL  = time.Hour
	DefaultResetTokenTTL    = time.Hour
	DefaultPasswordHashCost = 10
	DefaultResetLinkBaseURL = "https://localhost:5174/reset-password"
	DefaultHTTPAddress      = ":5000"
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultLogLevel         = "debug"
	DefaultMailQueue        = "mail.outgoing"
	DefaultRetryBaseDelay   = 500 * time.Millisecond
	DefaultLimiterFailures  = 5
	DefaultLimiterWindow    = 15 * time.Minute

	// InsecureTokenSignKey is used when no signing key is configured.
	// Startup logs a warning whenever it is in effect.
	InsecureTokenSignKey = "your-secret-key"
)

// applyDefaults fills zero-valued fields of the merged configuration.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = InsecureTokenSignKey
		cfg.App.InsecureTokenSignKey = true
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.SessionTokenTTL == 0 {
		cfg.App.SessionTokenTTL = DefaultSessionTokenTTL
	}
	if cfg.App.ResetTokenTTL == 0 {
		cfg.App.ResetTokenTTL = DefaultResetTokenTTL
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}
	if cfg.App.ResetLinkBaseURL == "" {
		cfg.App.ResetLinkBaseURL = DefaultResetLinkBaseURL
	}
	cfg.App.ResetLinkBaseURL = strings.TrimRight(cfg.App.ResetLinkBaseURL, "/")
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	if cfg.Mail.Transport == "" {
		cfg.Mail.Transport = MailTransportLog
		cfg.Mail.FallbackToLog = true
		if cfg.Mail.Host != "" {
			cfg.Mail.Transport = MailTransportSMTP
			cfg.Mail.FallbackToLog = false
		}
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}
	if cfg.Mail.Queue == "" {
		cfg.Mail.Queue = DefaultMailQueue
	}
	if cfg.Mail.RetryBaseDelay == 0 {
		cfg.Mail.RetryBaseDelay = DefaultRetryBaseDelay
	}

	if cfg.Limiter.MaxFailures == 0 {
		cfg.Limiter.MaxFailures = DefaultLimiterFailures
	}
	if cfg.Limiter.Window == 0 {
		cfg.Limiter.Window = DefaultLimiterWindow
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// wrapping one of the ErrInvalid... sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: connection pool sizes must not be negative", ErrInvalidStorageConfigs)
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be between %d and %d",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.App.SessionTokenTTL < 0 || cfg.App.ResetTokenTTL < 0 {
		return fmt.Errorf("%w: token lifetimes must be positive", ErrInvalidAppConfigs)
	}

	if err := cfg.Mail.validate(); err != nil {
		return err
	}

	if cfg.Limiter.Enabled() && (cfg.Limiter.MaxFailures < 1 || cfg.Limiter.Window < 0) {
		return fmt.Errorf("%w: max failures must be positive", ErrInvalidLimiterConfigs)
	}

	return nil
}

func (m Mail) validate() error {
	switch m.Transport {
	case MailTransportSMTP:
		if m.Host == "" || m.Port == 0 {
			return fmt.Errorf("%w: smtp transport needs host and port", ErrInvalidMailConfigs)
		}
	case MailTransportHTTP:
		if m.RelayURL == "" {
			return fmt.Errorf("%w: http transport needs a relay url", ErrInvalidMailConfigs)
		}
	case MailTransportAMQP:
		if m.BrokerURL == "" {
			return fmt.Errorf("%w: amqp transport needs a broker url", ErrInvalidMailConfigs)
		}
	case MailTransportLog:
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidMailConfigs, m.Transport)
	}

	if m.Timeout < 0 || m.RetryBaseDelay < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidMailConfigs)
	}

	return nil
}
