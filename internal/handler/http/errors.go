// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoSubjectInContext is returned when a gated handler runs without the
	// subject id the auth middleware stores.
	ErrNoSubjectInContext = errors.New("no subject id in request context")

	// ErrInvalidQueryParameter is returned when limit or offset is not a
	// non-negative integer.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
)
