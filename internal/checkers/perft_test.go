package checkers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerftInitial(t *testing.T) {
	b := NewInitialBoard()
	for _, side := range []Side{Red, Blue} {
		require.EqualValues(t, 1, Perft(b, side, 0))
		require.EqualValues(t, 7, Perft(b, side, 1))
		// The armies cannot touch within two plies.
		require.EqualValues(t, 49, Perft(b, side, 2))
	}
	require.Equal(t, NewInitialBoard(), b)
}

func TestPerftStuckSide(t *testing.T) {
	pos, err := DecodePosition("8/8/8/8/8/o7/8/x7 r")
	require.NoError(t, err)
	require.Zero(t, Perft(&pos.Board, Red, 3))
}
