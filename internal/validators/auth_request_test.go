// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestNewAuthRequestValidator
// ---------------------------------------------------------------------------

func TestNewAuthRequestValidator(t *testing.T) {
	v := NewAuthRequestValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewAuthRequestValidator()
	ctx := context.Background()

	auth := models.AuthRequest{Email: "admin@station.test", Password: "secret"}
	forgot := models.ForgotPasswordRequest{Email: "admin@station.test"}
	reset := models.ResetPasswordRequest{Token: "a.b.c", NewPassword: "secret2"}

	assert.NoError(t, v.Validate(ctx, auth))
	assert.NoError(t, v.Validate(ctx, &auth))
	assert.NoError(t, v.Validate(ctx, forgot))
	assert.NoError(t, v.Validate(ctx, &forgot))
	assert.NoError(t, v.Validate(ctx, reset))
	assert.NoError(t, v.Validate(ctx, &reset))

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestValidate_AuthRequest
// ---------------------------------------------------------------------------

func TestValidate_AuthRequest(t *testing.T) {
	v := NewAuthRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.AuthRequest
		fields  []string
		wantErr error
	}{
		{"valid", models.AuthRequest{Email: "a@b.co", Password: "p"}, nil, nil},
		{"surrounding spaces in email", models.AuthRequest{Email: "  a@b.co ", Password: "p"}, nil, nil},
		{"empty email", models.AuthRequest{Email: " ", Password: "p"}, nil, ErrEmptyEmail},
		{"no at sign", models.AuthRequest{Email: "admin", Password: "p"}, nil, ErrInvalidEmail},
		{"display name", models.AuthRequest{Email: "Admin <a@b.co>", Password: "p"}, nil, ErrInvalidEmail},
		{"empty password", models.AuthRequest{Email: "a@b.co"}, nil, ErrEmptyPassword},
		{"72 bytes is fine", models.AuthRequest{Email: "a@b.co", Password: strings.Repeat("x", 72)}, nil, nil},
		{"73 bytes", models.AuthRequest{Email: "a@b.co", Password: strings.Repeat("x", 73)}, nil, ErrPasswordTooLong},
		{"only email checked", models.AuthRequest{Email: "a@b.co"}, []string{FieldEmail}, nil},
		{"unknown field", models.AuthRequest{Email: "a@b.co", Password: "p"}, []string{FieldToken}, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_ForgotPasswordRequest
// ---------------------------------------------------------------------------

func TestValidate_ForgotPasswordRequest(t *testing.T) {
	v := NewAuthRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ForgotPasswordRequest{Email: "a@b.co"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ForgotPasswordRequest{}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.ForgotPasswordRequest{Email: "a@"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.ForgotPasswordRequest{Email: "a@b.co"}, FieldPassword), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidate_ResetPasswordRequest
// ---------------------------------------------------------------------------

func TestValidate_ResetPasswordRequest(t *testing.T) {
	v := NewAuthRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ResetPasswordRequest{NewPassword: "p"}), ErrEmptyToken)
	assert.ErrorIs(t, v.Validate(ctx, models.ResetPasswordRequest{Token: "t"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.ResetPasswordRequest{Token: "t", NewPassword: strings.Repeat("x", 100)}), ErrPasswordTooLong)
	assert.NoError(t, v.Validate(ctx, models.ResetPasswordRequest{Token: "t"}, FieldToken))
}
