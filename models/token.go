// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose tells a session token apart from a password-reset token.
type TokenPurpose string

const (
	// TokenPurposeSession marks tokens issued by login.
	TokenPurposeSession TokenPurpose = "session"

	// TokenPurposeReset marks tokens mailed by the forgot-password flow.
	TokenPurposeReset TokenPurpose = "reset"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// A *Token is itself a valid [jwt.Claims] value: the registered claims plus
// the purpose claim form the signed payload.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Purpose is the "purpose" claim. Written on every token; checked at
	// verification time only when purpose enforcement is enabled.
	Purpose TokenPurpose `json:"purpose,omitempty"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// SubjectID is the credential id extracted from the "sub" claim.
	SubjectID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
