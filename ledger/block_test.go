package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lineagechess/lineage/crypto"
)

func TestChallengeRoundTrip(t *testing.T) {
	white := crypto.GenerateKey()
	black := crypto.GenerateKey()

	challenge := NewChallenge(white.Public(), black.Public())
	challenge.Version = 1
	challenge.NetworkID = 3
	challenge.ID = 0xdeadbeef
	challenge.PairedGameID = 42
	challenge.Timestamp = 1735689600

	encoded := challenge.Encode()
	require.Len(t, encoded, ChallengeBlockSize)

	decoded, err := DecodeChallenge(encoded)
	require.NoError(t, err)
	require.Equal(t, challenge, decoded)
}

func TestChallengeZeroDefaults(t *testing.T) {
	white := crypto.GenerateKey()
	black := crypto.GenerateKey()

	challenge := NewChallenge(white.Public(), black.Public())
	require.Zero(t, challenge.Version)
	require.Zero(t, challenge.NetworkID)
	require.Zero(t, challenge.ID)
	require.Zero(t, challenge.Timestamp)
	require.Equal(t, white.Public(), challenge.WhitePublicKey)
	require.Equal(t, black.Public(), challenge.BlackPublicKey)
}

func TestDecodeChallengeTruncated(t *testing.T) {
	challenge := NewChallenge(crypto.GenerateKey().Public(), crypto.GenerateKey().Public())
	encoded := challenge.Encode()

	for _, n := range []int{0, 1, 41, ChallengeBlockSize - 1} {
		_, err := DecodeChallenge(encoded[:n])
		require.ErrorIs(t, err, ErrTruncatedInput, "length %d", n)
	}
}

func TestAcceptRoundTrip(t *testing.T) {
	key := crypto.GenerateKey()
	challenge := NewChallenge(key.Public(), crypto.GenerateKey().Public())

	accept, err := NewAccept(challenge, key)
	require.NoError(t, err)
	require.True(t, accept.verifies(challenge, key.Public()))

	encoded := accept.Encode()
	require.Len(t, encoded, AcceptBlockSize)

	decoded, err := DecodeAccept(encoded)
	require.NoError(t, err)
	require.Equal(t, accept, decoded)
}

func TestDecodeAcceptTruncated(t *testing.T) {
	_, err := DecodeAccept(make([]byte, AcceptBlockSize-1))
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestMoveRoundTrip(t *testing.T) {
	var sig crypto.Signature
	for i := range sig {
		sig[i] = byte(i)
	}
	move := MoveBlock{Start: 12, End: 28, Signature: sig}

	encoded := move.Encode()
	require.Len(t, encoded, MoveBlockSize)

	decoded, err := DecodeMove(encoded)
	require.NoError(t, err)
	require.Equal(t, move, decoded)
}

func TestDecodeMoveTruncated(t *testing.T) {
	_, err := DecodeMove(make([]byte, MoveBlockSize-1))
	require.ErrorIs(t, err, ErrTruncatedInput)
}
