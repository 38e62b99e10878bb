package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/adapter"
	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/crypto"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/store"
	"github.com/MKhiriev/fuel-station-dashboard/internal/utils"
	"github.com/MKhiriev/fuel-station-dashboard/models"
)

// Reset mail content.
const (
	resetMailSubject    = "Resetting password"
	resetMailTextPrefix = "reset link : "
)

// authService is the core implementation of [AuthService].
type authService struct {
	credentials store.CredentialRepository

	// loginAttempts counts failed logins. Nil disables throttling.
	loginAttempts store.LoginAttemptStorage
	maxFailures   int64

	hasher crypto.PasswordHasher
	tokens TokenService
	mail   adapter.MailDispatcher
	ids    IDGenerator
	now    func() time.Time

	sessionTTL       time.Duration
	resetTTL         time.Duration
	resetLinkBaseURL string

	logger *logger.Logger
}

// NewAuthService constructs the core [AuthService]. Pass the result through
// [NewAuthValidationService] and [NewAuthMetricsService] before exposing it.
func NewAuthService(
	storages *store.Storages,
	hasher crypto.PasswordHasher,
	tokens TokenService,
	mail adapter.MailDispatcher,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) AuthService {
	return &authService{
		credentials:      storages.CredentialRepository,
		loginAttempts:    storages.LoginAttemptStorage,
		maxFailures:      cfg.Limiter.MaxFailures,
		hasher:           hasher,
		tokens:           tokens,
		mail:             mail,
		ids:              utils.NewUUIDGenerator(),
		now:              time.Now,
		sessionTTL:       cfg.App.SessionTokenTTL,
		resetTTL:         cfg.App.ResetTokenTTL,
		resetLinkBaseURL: cfg.App.ResetLinkBaseURL,
		logger:           logger,
	}
}

// Register creates a credential for req.Email.
//
// Returns the stored record without its hash, or:
//   - ErrAccountAlreadyExists if the email is taken (lookup or unique index).
//   - ErrInvalidDataProvided if the hasher refuses the password.
//   - ErrHashingFailed / ErrCredentialStoreFailed on internal failures.
func (a *authService) Register(ctx context.Context, req models.AuthRequest) (models.Credential, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(req.Email)

	_, err := a.credentials.FindCredentialByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Str("email", email).Msg("registration refused: email already taken")
		return models.Credential{}, ErrAccountAlreadyExists
	case !errors.Is(err, store.ErrCredentialNotFound):
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCredentialStoreFailed, err)
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return models.Credential{}, err
	}

	now := a.now().UTC()
	created, err := a.credentials.CreateCredential(ctx, models.Credential{
		ID:           a.ids.Generate(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", email).Msg("registration lost a race for the email")
			return models.Credential{}, ErrAccountAlreadyExists
		}
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCredentialStoreFailed, err)
	}

	log.Info().Str("id", created.ID).Msg("account registered")
	return withoutHash(created), nil
}

// Login verifies the password of req.Email and issues a session token.
//
// Returns ErrTooManyAttempts (throttle on), ErrAccountNotFound or
// ErrWrongPassword.
func (a *authService) Login(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(req.Email)

	if a.throttled(ctx, email) {
		log.Warn().Str("email", email).Msg("login refused: too many failed attempts")
		return models.Token{}, ErrTooManyAttempts
	}

	credential, err := a.findByEmail(ctx, email)
	if err != nil {
		return models.Token{}, err
	}

	ok, err := a.hasher.Verify(req.Password, credential.PasswordHash)
	if err != nil {
		return models.Token{}, a.verifyError(err)
	}
	if !ok {
		a.registerFailure(ctx, email)
		log.Info().Str("id", credential.ID).Msg("wrong password")
		return models.Token{}, ErrWrongPassword
	}

	a.resetFailures(ctx, email)

	return a.tokens.Issue(ctx, credential.ID, models.TokenPurposeSession, a.sessionTTL)
}

// ForgotPassword mails a reset link for req.Email and returns once the mail
// dispatcher accepted it.
func (a *authService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)
	email := normalizeEmail(req.Email)

	credential, err := a.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := a.tokens.Issue(ctx, credential.ID, models.TokenPurposeReset, a.resetTTL)
	if err != nil {
		return err
	}

	mail := models.Mail{
		To:      credential.Email,
		Subject: resetMailSubject,
		Text:    resetMailTextPrefix + a.resetLink(token.String()),
	}
	if err = a.mail.Send(ctx, mail); err != nil {
		log.Err(err).Str("id", credential.ID).Msg("reset mail was not dispatched")
		return fmt.Errorf("%w: %w", ErrMailDispatchFailed, err)
	}

	log.Info().Str("id", credential.ID).Msg("reset mail dispatched")
	return nil
}

// ResetPassword replaces the password of the token's subject.
//
// Returns ErrTokenIsInvalid / ErrTokenIsExpired, ErrAccountNotFound or
// ErrSamePassword when the new password verifies against the current hash.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	token, err := a.tokens.Verify(ctx, req.Token, models.TokenPurposeReset)
	if err != nil {
		return err
	}

	credential, err := a.findByID(ctx, token.SubjectID)
	if err != nil {
		return err
	}

	same, err := a.hasher.Verify(req.NewPassword, credential.PasswordHash)
	if err != nil {
		return a.verifyError(err)
	}
	if same {
		return ErrSamePassword
	}

	passwordHash, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if _, err = a.credentials.UpdatePasswordHash(ctx, credential.ID, passwordHash, a.now().UTC()); err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("%w: %w", ErrCredentialStoreFailed, err)
	}

	log.Info().Str("id", credential.ID).Msg("password reset")
	return nil
}

// ListAccounts returns the credentials matching filter without hashes.
func (a *authService) ListAccounts(ctx context.Context, filter models.CredentialFilter) ([]models.Credential, error) {
	filter.Email = normalizeEmail(filter.Email)

	credentials, err := a.credentials.ListCredentials(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentialStoreFailed, err)
	}

	for i := range credentials {
		credentials[i] = withoutHash(credentials[i])
	}
	return credentials, nil
}

// Me returns the credential of the authenticated subject.
func (a *authService) Me(ctx context.Context, subjectID string) (models.Credential, error) {
	credential, err := a.findByID(ctx, subjectID)
	if err != nil {
		return models.Credential{}, err
	}

	return withoutHash(credential), nil
}

func (a *authService) findByEmail(ctx context.Context, email string) (models.Credential, error) {
	credential, err := a.credentials.FindCredentialByEmail(ctx, email)
	switch {
	case err == nil:
		return credential, nil
	case errors.Is(err, store.ErrCredentialNotFound):
		logger.FromContext(ctx).Info().Str("email", email).Msg("no account for email")
		return models.Credential{}, ErrAccountNotFound
	default:
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCredentialStoreFailed, err)
	}
}

func (a *authService) findByID(ctx context.Context, id string) (models.Credential, error) {
	credential, err := a.credentials.FindCredentialByID(ctx, id)
	switch {
	case err == nil:
		return credential, nil
	case errors.Is(err, store.ErrCredentialNotFound):
		logger.FromContext(ctx).Info().Str("id", id).Msg("no account for id")
		return models.Credential{}, ErrAccountNotFound
	default:
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCredentialStoreFailed, err)
	}
}

func (a *authService) hashPassword(plaintext string) (string, error) {
	hash, err := a.hasher.Hash(plaintext)
	if err != nil {
		if errors.Is(err, crypto.ErrEmptyPassword) || errors.Is(err, crypto.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}
	return hash, nil
}

func (a *authService) verifyError(err error) error {
	if errors.Is(err, crypto.ErrEmptyPassword) || errors.Is(err, crypto.ErrPasswordTooLong) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return fmt.Errorf("%w: %w", ErrHashingFailed, err)
}

func (a *authService) resetLink(token string) string {
	return a.resetLinkBaseURL + "/" + token
}

// throttled reports whether email has used up its failed logins. Counter
// failures are logged and let the login proceed.
func (a *authService) throttled(ctx context.Context, email string) bool {
	if a.loginAttempts == nil {
		return false
	}

	failures, err := a.loginAttempts.Failures(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("login throttle unavailable")
		return false
	}
	return failures >= a.maxFailures
}

func (a *authService) registerFailure(ctx context.Context, email string) {
	if a.loginAttempts == nil {
		return
	}
	if _, err := a.loginAttempts.RegisterFailure(ctx, email); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed login was not counted")
	}
}

func (a *authService) resetFailures(ctx context.Context, email string) {
	if a.loginAttempts == nil {
		return
	}
	if err := a.loginAttempts.Reset(ctx, email); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("login failures were not cleared")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func withoutHash(c models.Credential) models.Credential {
	c.PasswordHash = ""
	return c
}
