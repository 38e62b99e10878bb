package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() PasswordHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	h, ok := NewBcryptHasher(99).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h, ok = NewBcryptHasher(12).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, 12, h.cost)
}

func TestHash_RoundTrip(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("pump-station-7")
	require.NoError(t, err)
	assert.NotEqual(t, "pump-station-7", hash)

	ok, err := hasher.Verify("pump-station-7", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHash_IsSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, h := range []string{first, second} {
		ok, err := hasher.Verify("same-password", h)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestHash_UsesConfiguredCost(t *testing.T) {
	hash, err := NewBcryptHasher(5).Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestHash_InvalidInput(t *testing.T) {
	hasher := newTestHasher()

	_, err := hasher.Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = hasher.Hash(strings.Repeat("x", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = hasher.Hash(strings.Repeat("x", MaxPasswordBytes))
	assert.NoError(t, err)
}

func TestVerify(t *testing.T) {
	hasher := newTestHasher()
	hash, err := hasher.Hash("correct")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
		hash      string
		want      bool
		wantErr   error
	}{
		{name: "match", plaintext: "correct", hash: hash, want: true},
		{name: "mismatch", plaintext: "wrong", hash: hash, want: false},
		{name: "malformed hash", plaintext: "correct", hash: "not-a-bcrypt-hash", wantErr: ErrMalformedHash},
		{name: "empty hash", plaintext: "correct", hash: "", wantErr: ErrMalformedHash},
		{name: "empty plaintext", plaintext: "", hash: hash, wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hasher.Verify(tt.plaintext, tt.hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
