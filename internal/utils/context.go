// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectIDCtxKey is the key under which the auth middleware stores the
// credential id taken from a verified token's "sub" claim.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SubjectIDCtxKey, credentialID)
var SubjectIDCtxKey = contextKey("subjectID")

// GetSubjectIDFromContext retrieves the authenticated credential id from the
// context.
//
// Returns ok == false when the value is missing, empty or not a string.
func GetSubjectIDFromContext(ctx context.Context) (string, bool) {
	subjectID, ok := ctx.Value(SubjectIDCtxKey).(string)
	return subjectID, ok && subjectID != ""
}
