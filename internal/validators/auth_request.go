package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/fuel-station-dashboard/models"
)

// Field name constants accepted by [AuthRequestValidator.Validate] to
// restrict validation to a subset of fields.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldNewPassword = "new_password"
	FieldToken       = "token"
)

// MaxPasswordBytes is the longest password accepted. Longer input would be
// silently truncated by bcrypt.
const MaxPasswordBytes = 72

// AuthRequestValidator implements [Validator] for the authentication request
// models: AuthRequest, ForgotPasswordRequest and ResetPasswordRequest, by
// value or by pointer.
type AuthRequestValidator struct {
}

// NewAuthRequestValidator constructs an [AuthRequestValidator].
func NewAuthRequestValidator() Validator {
	return &AuthRequestValidator{}
}

// Validate dispatches to the type-specific check. Without fields every field
// of the request is checked.
func (v *AuthRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AuthRequest:
		return v.validateAuthRequest(value, fields...)
	case *models.AuthRequest:
		return v.validateAuthRequest(*value, fields...)

	case models.ForgotPasswordRequest:
		return v.validateForgotPasswordRequest(value, fields...)
	case *models.ForgotPasswordRequest:
		return v.validateForgotPasswordRequest(*value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPasswordRequest(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPasswordRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthRequestValidator) validateAuthRequest(req models.AuthRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(req.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthRequestValidator) validateForgotPasswordRequest(req models.ForgotPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthRequestValidator) validateResetPasswordRequest(req models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if strings.TrimSpace(req.Token) == "" {
				return ErrEmptyToken
			}
		case FieldNewPassword:
			if err := validatePassword(req.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare addr-spec ("a@b.c"); display names and
// bracketed forms are refused.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
