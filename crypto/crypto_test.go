package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	key := GenerateKey()
	msg := []byte("challenge bytes")

	sig, err := key.Sign(msg)
	require.NoError(t, err)
	require.True(t, Verify(key.Public(), msg, sig))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	key := GenerateKey()
	other := GenerateKey()
	msg := []byte("challenge bytes")

	sig, err := key.Sign(msg)
	require.NoError(t, err)
	require.False(t, Verify(other.Public(), msg, sig))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	key := GenerateKey()
	msg := []byte("challenge bytes")

	sig, err := key.Sign(msg)
	require.NoError(t, err)

	msg[0] ^= 0x01
	require.False(t, Verify(key.Public(), msg, sig))
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	key := GenerateKey()
	msg := []byte("challenge bytes")

	sig, err := key.Sign(msg)
	require.NoError(t, err)

	sig[10] ^= 0x80
	require.False(t, Verify(key.Public(), msg, sig))
}

func TestVerifyRejectsMalformedPublicKey(t *testing.T) {
	key := GenerateKey()
	msg := []byte("challenge bytes")

	sig, err := key.Sign(msg)
	require.NoError(t, err)

	var garbage PublicKey
	for i := range garbage {
		garbage[i] = 0xff
	}
	require.False(t, Verify(garbage, msg, sig))
}

func TestKeysAreDistinct(t *testing.T) {
	require.NotEqual(t, GenerateKey().Public(), GenerateKey().Public())
}
