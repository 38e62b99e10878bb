package crypto

import "errors"

var (
	// ErrEmptyPassword is returned when an empty plaintext is hashed.
	ErrEmptyPassword = errors.New("password is empty")
	// ErrPasswordTooLong is returned for plaintexts longer than
	// MaxPasswordBytes; bcrypt ignores everything past that length.
	ErrPasswordTooLong = errors.New("password is too long")
	// ErrMalformedHash is returned by Verify when the stored hash is not a
	// bcrypt hash.
	ErrMalformedHash = errors.New("stored password hash is malformed")
)
