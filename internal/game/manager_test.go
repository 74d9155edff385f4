package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	g := m.NewGame(checkers.Blue)
	_, err := uuid.Parse(g.ID)
	require.NoError(t, err)
	require.Equal(t, checkers.Blue, g.Pos.SideToMove)
	require.Equal(t, 1, m.Len())

	got, err := m.Get(g.ID)
	require.NoError(t, err)
	require.Same(t, g, got)

	next, err := g.Pos.ApplyMove(checkers.Move{From: 40, To: 33})
	require.NoError(t, err)
	entry := HistoryEntry{Ply: 1, Side: checkers.Blue, Move: checkers.Move{From: 40, To: 33}}
	require.NoError(t, m.Update(g.ID, next, entry))
	require.Equal(t, []HistoryEntry{entry}, g.History)
	require.Equal(t, checkers.Red, g.Pos.SideToMove)

	require.NoError(t, m.Finish(g.ID, checkers.RedWins, ReasonNoMoves))
	require.True(t, g.Finished())
	require.ErrorIs(t, m.Update(g.ID, next, entry), ErrGameOver)

	require.NoError(t, m.Delete(g.ID))
	_, err = m.Get(g.ID)
	require.ErrorIs(t, err, ErrGameNotFound)
	require.ErrorIs(t, m.Delete(g.ID), ErrGameNotFound)
	require.ErrorIs(t, m.Finish(g.ID, checkers.Draw, ""), ErrGameNotFound)
}

func TestNewGameFromCopies(t *testing.T) {
	m := NewManager()
	pos := checkers.NewInitialPosition(checkers.Red)
	g := m.NewGameFrom(pos)
	pos.Board.Squares[1] = checkers.Empty
	require.Equal(t, checkers.RedMan, g.Pos.Board.Squares[1])
	require.NotEqual(t, g.ID, m.NewGameFrom(pos).ID)
}
