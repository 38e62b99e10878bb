package service

import "errors"

// Validation and domain errors returned by [AuthService].
var (
	// ErrInvalidDataProvided is returned when a request fails input
	// validation: malformed email, empty or over-long password, empty token.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAccountAlreadyExists is returned by Register when the email is taken.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no credential matches the email or
	// the token subject.
	ErrAccountNotFound = errors.New("account not found")

	// ErrWrongPassword is returned by Login when the password does not
	// verify against the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrSamePassword is returned by ResetPassword when the new password
	// equals the current one.
	ErrSamePassword = errors.New("the new password must differ from the current one")

	// ErrTooManyAttempts is returned by Login while the email is throttled.
	ErrTooManyAttempts = errors.New("too many failed login attempts")
)

// Token errors returned by [TokenService].
var (
	ErrTokenIsInvalid      = errors.New("invalid token")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Internal errors. They map to 500 at the transport boundary.
var (
	ErrHashingFailed         = errors.New("password hashing failed")
	ErrMailDispatchFailed    = errors.New("mail dispatch failed")
	ErrCredentialStoreFailed = errors.New("credential store failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
