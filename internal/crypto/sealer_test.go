package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastArgon = Argon2Params{Time: 1, Memory: 1024, Threads: 1}

func newTestSealer(t *testing.T, passphrase string) Sealer {
	t.Helper()
	s, err := NewSealer(passphrase, []byte("0123456789abcdef"), fastArgon)
	require.NoError(t, err)
	return s
}

func TestNewSealer_InvalidInput(t *testing.T) {
	_, err := NewSealer("", []byte("0123456789abcdef"), fastArgon)
	assert.ErrorIs(t, err, ErrInvalidKeyMaterial)

	_, err = NewSealer("pass", []byte("short"), fastArgon)
	assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
}

func TestSealer_RoundTrip(t *testing.T) {
	s := newTestSealer(t, "correct horse battery staple")

	for _, in := range []string{"", "42", "3.14", "hello, 世界", "trailing\x00"} {
		sealed, err := s.Seal(in)
		require.NoError(t, err)

		opened, err := s.Open(sealed)
		require.NoError(t, err)
		assert.Equal(t, in, opened)
	}
}

func TestSealer_NonceMakesOutputUnique(t *testing.T) {
	s := newTestSealer(t, "pass")

	a, err := s.Seal("same")
	require.NoError(t, err)
	b, err := s.Seal("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSealer_WrongKeyFails(t *testing.T) {
	sealed, err := newTestSealer(t, "pass-one").Seal("value")
	require.NoError(t, err)

	_, err = newTestSealer(t, "pass-two").Open(sealed)
	assert.ErrorIs(t, err, ErrOpen)
}

func TestSealer_TamperedFails(t *testing.T) {
	s := newTestSealer(t, "pass")

	sealed, err := s.Seal("value")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xFF

	_, err = s.Open(base64.StdEncoding.EncodeToString(blob))
	assert.ErrorIs(t, err, ErrOpen)
}

func TestSealer_MalformedInput(t *testing.T) {
	s := newTestSealer(t, "pass")

	_, err := s.Open("%%%")
	assert.ErrorIs(t, err, ErrDecode)

	_, err = s.Open(base64.StdEncoding.EncodeToString([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, ErrDecode)
}
