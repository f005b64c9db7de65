package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialPosition(t *testing.T) {
	pos := Initial()
	require.Equal(t, White, pos.SideToMove())
	require.Len(t, pos.LegalMoves(), 20)
}

func TestApplyLegalMove(t *testing.T) {
	pos := Initial()
	e2e4 := Move{Start: 12, End: 28}
	require.True(t, pos.IsLegal(e2e4))

	next, err := pos.Apply(e2e4)
	require.NoError(t, err)
	require.Equal(t, Black, next.SideToMove())

	// the original position is unchanged
	require.Equal(t, White, pos.SideToMove())
}

func TestApplyIllegalMove(t *testing.T) {
	pos := Initial()

	// e2-e5 is not a pawn move
	illegal := Move{Start: 12, End: 36}
	require.False(t, pos.IsLegal(illegal))
	_, err := pos.Apply(illegal)
	require.Error(t, err)
}

func TestApplyRejectsOutOfRangeSquares(t *testing.T) {
	pos := Initial()
	_, err := pos.Apply(Move{Start: 64, End: 12})
	require.Error(t, err)
	_, err = pos.Apply(Move{Start: 12, End: 200})
	require.Error(t, err)
}

func TestAlternatingSides(t *testing.T) {
	pos := Initial()
	for i, raw := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		move, err := ParseMove(raw)
		require.NoError(t, err)
		require.Equal(t, Color(i%2), pos.SideToMove())

		pos, err = pos.Apply(move)
		require.NoError(t, err)
	}
	require.Equal(t, White, pos.SideToMove())
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("a1")
	require.NoError(t, err)
	require.Equal(t, uint8(0), sq)

	sq, err = ParseSquare("h8")
	require.NoError(t, err)
	require.Equal(t, uint8(63), sq)

	sq, err = ParseSquare("e2")
	require.NoError(t, err)
	require.Equal(t, uint8(12), sq)
	require.Equal(t, "e2", SquareName(sq))

	for _, bad := range []string{"", "e", "e9", "i4", "22", "e2e4"} {
		_, err := ParseSquare(bad)
		require.Error(t, err, "square %q", bad)
	}
}

func TestParseMove(t *testing.T) {
	move, err := ParseMove("e2e4")
	require.NoError(t, err)
	require.Equal(t, Move{Start: 12, End: 28}, move)
	require.Equal(t, "e2e4", move.String())

	for _, bad := range []string{"", "e2", "e2e", "e2x4", "e2e44"} {
		_, err := ParseMove(bad)
		require.Error(t, err, "move %q", bad)
	}
}
