package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks plaintexts against stored hashes.
//
// Hash output is non-deterministic: hashing the same plaintext twice yields
// different strings, both of which verify.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext.
	// Returns ErrEmptyPassword or ErrPasswordTooLong for unusable input.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches storedHash. The comparison
	// runs in constant time. A mismatch is (false, nil); a stored hash that
	// cannot be parsed is ErrMalformedHash.
	Verify(plaintext, storedHash string) (bool, error)
}
