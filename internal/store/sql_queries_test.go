// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdatePasswordHashQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildUpdatePasswordHashQuery("id-1", "hash", at)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE credentials SET password_hash = $1, updated_at = $2 WHERE id = $3 RETURNING id, email, password_hash, created_at, updated_at",
		query)
	assert.Equal(t, []any{"hash", at, "id-1"}, args)
}

func TestBuildListCredentialsQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.CredentialFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    models.CredentialFilter{},
			wantQuery: "SELECT id, email, password_hash, created_at, updated_at FROM credentials ORDER BY created_at DESC, id DESC",
			wantArgs:  nil,
		},
		{
			name:      "email substring",
			filter:    models.CredentialFilter{Email: "pump"},
			wantQuery: "SELECT id, email, password_hash, created_at, updated_at FROM credentials WHERE email ILIKE $1 ORDER BY created_at DESC, id DESC",
			wantArgs:  []any{"%pump%"},
		},
		{
			name:      "wildcards are escaped",
			filter:    models.CredentialFilter{Email: "50%_off"},
			wantQuery: "SELECT id, email, password_hash, created_at, updated_at FROM credentials WHERE email ILIKE $1 ORDER BY created_at DESC, id DESC",
			wantArgs:  []any{`%50\%\_off%`},
		},
		{
			name:      "paging",
			filter:    models.CredentialFilter{Limit: 20, Offset: 40},
			wantQuery: "SELECT id, email, password_hash, created_at, updated_at FROM credentials ORDER BY created_at DESC, id DESC LIMIT 20 OFFSET 40",
			wantArgs:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListCredentialsQuery(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, `a\\b`, escapeLikePattern(`a\b`))
	assert.Equal(t, "plain", escapeLikePattern("plain"))
}
