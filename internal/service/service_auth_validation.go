package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fuel-station-dashboard/internal/validators"
	"github.com/MKhiriev/fuel-station-dashboard/models"
)

// AuthValidationService rejects malformed requests with
// ErrInvalidDataProvided before they reach the wrapped [AuthService].
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

// NewAuthValidationService constructs the validating wrapper.
func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAuthRequestValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.AuthRequest) (models.Credential, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ForgotPassword(ctx, req)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ResetPassword(ctx, req)
}

func (v *AuthValidationService) ListAccounts(ctx context.Context, filter models.CredentialFilter) ([]models.Credential, error) {
	return v.inner.ListAccounts(ctx, filter)
}

func (v *AuthValidationService) Me(ctx context.Context, subjectID string) (models.Credential, error) {
	if subjectID == "" {
		return models.Credential{}, fmt.Errorf("%w: empty subject", ErrInvalidDataProvided)
	}

	return v.inner.Me(ctx, subjectID)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
