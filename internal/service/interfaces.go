// Package service holds the business logic of the authentication subsystem:
// account registration and login, JWT issuing and verification, and the
// mailed password-reset flow.
//
// [AuthService] implementations are composed as decorators: the core service
// is wrapped by input validation and by prometheus counters, see
// [AuthServiceWrapper] and [NewServices].
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/fuel-station-dashboard/internal/service TokenService,AuthService,AppInfoService

// TokenService issues and verifies signed tokens.
type TokenService interface {
	// Issue signs a token for subjectID with the given purpose and lifetime.
	Issue(ctx context.Context, subjectID string, purpose models.TokenPurpose, ttl time.Duration) (models.Token, error)

	// Verify checks signature, algorithm, issuer and expiry of tokenString.
	// Returns ErrTokenIsExpired or ErrTokenIsInvalid on failure.
	Verify(ctx context.Context, tokenString string, purpose models.TokenPurpose) (models.Token, error)
}

// AuthService implements the account and credential-reset operations.
type AuthService interface {
	Register(ctx context.Context, req models.AuthRequest) (models.Credential, error)
	Login(ctx context.Context, req models.AuthRequest) (models.Token, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	ListAccounts(ctx context.Context, filter models.CredentialFilter) ([]models.Credential, error)
	Me(ctx context.Context, subjectID string) (models.Credential, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating or counting.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// IDGenerator produces identifiers for new credential records.
type IDGenerator interface {
	Generate() string
}
