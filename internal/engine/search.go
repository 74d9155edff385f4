package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
)

// Large enough to act as +/- infinity; a side without moves scores this.
const scoreInf = 1_000_000_000

type SearchResult struct {
	Move     checkers.Move
	Score    int // minimax: positive is good for red; best-first: for the searching side
	Nodes    int64
	Depth    int
	Strategy Strategy
	TimeUsed time.Duration
}

// Search selects a move for side on b. The board is copied into the search
// tree and never modified. ErrNoMoveFound is returned when side has nothing
// to play.
func (e *Engine) Search(b *checkers.Board, side checkers.Side) (SearchResult, error) {
	start := time.Now()
	e.nodes = 0

	var (
		res SearchResult
		err error
	)
	switch e.cfg.Strategy {
	case StrategyMinimax:
		res, err = e.searchMinimax(b, side)
	case StrategyBestFirst:
		res, err = e.searchBestFirst(b, side)
	default:
		return SearchResult{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, e.cfg.Strategy)
	}
	if err != nil {
		log.Debug().Str("strategy", string(e.cfg.Strategy)).Str("side", side.String()).Err(err).Msg("search failed")
		return SearchResult{}, err
	}

	res.Nodes = e.nodes
	res.Depth = e.cfg.MaxDepth
	res.Strategy = e.cfg.Strategy
	res.TimeUsed = time.Since(start)

	log.Debug().
		Str("strategy", string(res.Strategy)).
		Str("side", side.String()).
		Str("move", res.Move.String()).
		Int("score", res.Score).
		Int64("nodes", res.Nodes).
		Dur("elapsed", res.TimeUsed).
		Msg("search done")
	return res, nil
}

// SelectMove runs the default minimax search for side.
func SelectMove(b *checkers.Board, side checkers.Side) (checkers.Move, error) {
	res, err := NewEngine(DefaultConfig()).Search(b, side)
	if err != nil {
		return checkers.Move{}, err
	}
	return res.Move, nil
}
