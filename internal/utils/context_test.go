// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "subjectID", SubjectIDCtxKey.String())
}

func TestGetSubjectIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    context.WithValue(context.Background(), SubjectIDCtxKey, "0192f6f1-aaaa-7bbb-8ccc-000000000001"),
			wantID: "0192f6f1-aaaa-7bbb-8ccc-000000000001",
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), SubjectIDCtxKey, int64(42)),
		},
		{
			name: "empty string",
			ctx:  context.WithValue(context.Background(), SubjectIDCtxKey, ""),
		},
		{
			name: "plain string key does not collide",
			ctx:  context.WithValue(context.Background(), "subjectID", "id"), //nolint:staticcheck
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetSubjectIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
