package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
)

func minimaxEngine(depth int) *Engine {
	return NewEngine(SearchConfig{Strategy: StrategyMinimax, MaxDepth: depth})
}

func TestMinimaxTakesCaptureRed(t *testing.T) {
	// red man 26, blue men 35 and 62.
	pos := mustDecode(t, "8/8/8/2x5/3o4/8/8/6o1 r")
	for _, depth := range []int{1, 2} {
		res, err := minimaxEngine(depth).Search(&pos.Board, checkers.Red)
		require.NoError(t, err)
		require.Equal(t, checkers.Move{From: 26, To: 44}, res.Move, "depth %d", depth)
		require.Equal(t, StrategyMinimax, res.Strategy)
		require.Positive(t, res.Nodes)
	}
}

func TestMinimaxTakesCaptureBlue(t *testing.T) {
	// red men 1 and 28, blue man 37.
	pos := mustDecode(t, "1x6/8/8/4x3/5o2/8/8/8 b")
	res, err := minimaxEngine(1).Search(&pos.Board, checkers.Blue)
	require.NoError(t, err)
	require.Equal(t, checkers.Move{From: 37, To: 19}, res.Move)
	require.Zero(t, res.Score)
}

func TestMinimaxDeterministic(t *testing.T) {
	b := checkers.NewInitialBoard()
	first, err := minimaxEngine(DefaultMinimaxDepth).Search(b, checkers.Blue)
	require.NoError(t, err)
	second, err := minimaxEngine(DefaultMinimaxDepth).Search(b, checkers.Blue)
	require.NoError(t, err)
	require.Equal(t, first.Move, second.Move)
	require.Equal(t, first.Score, second.Score)
	require.Equal(t, first.Nodes, second.Nodes)
	require.Contains(t, b.LegalMoves(checkers.Blue), first.Move)
}

func TestMinimaxDoesNotTouchBoard(t *testing.T) {
	b := checkers.NewInitialBoard()
	before := *b
	_, err := minimaxEngine(3).Search(b, checkers.Red)
	require.NoError(t, err)
	require.Equal(t, before, *b)
}

func TestMinimaxNoMoveFound(t *testing.T) {
	// red man stuck on the last row.
	pos := mustDecode(t, "8/8/8/8/8/o7/8/x7 r")
	_, err := minimaxEngine(4).Search(&pos.Board, checkers.Red)
	require.ErrorIs(t, err, ErrNoMoveFound)
}

func TestMinimaxPrefersWinningLine(t *testing.T) {
	// Blue's last man is on 35; the jump ends the game, so a side without
	// moves must score as a loss rather than a neutral leaf.
	pos := mustDecode(t, "8/8/8/2x5/3o4/8/8/8 r")
	res, err := minimaxEngine(3).Search(&pos.Board, checkers.Red)
	require.NoError(t, err)
	require.Equal(t, checkers.Move{From: 26, To: 44}, res.Move)
	require.Equal(t, scoreInf, res.Score)
}

func TestMinimaxMutualBlockIsDraw(t *testing.T) {
	// red's only move 40-49 leaves both sides without moves.
	pos := mustDecode(t, "1o6/8/8/8/8/x7/8/x1x5 r")
	res, err := minimaxEngine(4).Search(&pos.Board, checkers.Red)
	require.NoError(t, err)
	require.Equal(t, checkers.Move{From: 40, To: 49}, res.Move)
	require.Zero(t, res.Score)

	after, err := pos.ApplyMove(res.Move)
	require.NoError(t, err)
	require.Equal(t, checkers.Draw, after.Board.Outcome())
}

func TestSelectMove(t *testing.T) {
	b := checkers.NewInitialBoard()
	mv, err := SelectMove(b, checkers.Red)
	require.NoError(t, err)
	require.Contains(t, b.LegalMoves(checkers.Red), mv)
}
