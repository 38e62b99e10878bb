// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the dashboard API writes into
// {"message": ...} response bodies. The dashboard client matches on some of
// them, so the wording is part of the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidGzip is returned when a gzip-encoded body cannot be read.
	MsgInvalidGzip = "invalid gzip data"

	// MsgInternalError is returned for every unexpected server-side failure.
	MsgInternalError = "error"

	// MsgNoToken is returned by gated routes called without an
	// "Authorization" header.
	MsgNoToken = "No token provided"

	// MsgInvalidToken is returned when the bearer or reset token cannot be
	// verified.
	MsgInvalidToken = "Invalid token"

	// MsgTokenIsExpired is returned when a token verifies but its expiry
	// time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgUserAlreadyExists is returned by register for a taken email.
	MsgUserAlreadyExists = "user already exist"

	// MsgUserDoesNotExist is returned by login for an unknown email.
	MsgUserDoesNotExist = "user doesnt exist"

	// MsgPasswordIncorrect is returned by login for a wrong password.
	MsgPasswordIncorrect = "password incorrect"

	// MsgTooManyAttempts is returned by login while the throttle is engaged.
	MsgTooManyAttempts = "too many failed login attempts"

	// MsgEmailNotFound is returned by forgot-password for an unknown email.
	MsgEmailNotFound = "email not found"

	// MsgEmailSent acknowledges a dispatched reset link.
	MsgEmailSent = "email sent"

	// MsgUserNotFound is returned when the token subject no longer exists.
	MsgUserNotFound = "user not found"

	// MsgSamePassword is returned when a reset reuses the current password.
	MsgSamePassword = "password shouldnt be the same as the old one"

	// MsgPasswordReset acknowledges a successful password reset.
	MsgPasswordReset = "the new password has been reseted"
)
