package game

import (
	"time"

	"checkers/internal/checkers"
)

type HistoryEntry struct {
	Ply       int
	Side      checkers.Side
	Move      checkers.Move
	Capture   bool
	Promotion bool
	IsAI      bool
	Elapsed   time.Duration
}

type GameState struct {
	ID        string
	Pos       *checkers.Position
	History   []HistoryEntry
	Outcome   checkers.Outcome
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Finished reports whether the game has a decided outcome.
func (g *GameState) Finished() bool {
	return g.Outcome != checkers.Ongoing
}
