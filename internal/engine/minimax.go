package engine

import (
	"fmt"
	"sort"

	"checkers/internal/checkers"
)

// searchMinimax expands every legal move to MaxDepth plies without pruning.
// Red maximises MaterialScore, blue minimises it.
func (e *Engine) searchMinimax(b *checkers.Board, side checkers.Side) (SearchResult, error) {
	t := newTree(b)
	if _, err := e.minimax(t, rootID, e.cfg.MaxDepth, side); err != nil {
		return SearchResult{}, err
	}

	children := append([]int(nil), t.nodes[rootID].children...)
	if len(children) == 0 {
		return SearchResult{}, fmt.Errorf("%w: %s has no legal moves", ErrNoMoveFound, side)
	}
	sort.SliceStable(children, func(i, j int) bool {
		return t.nodes[children[i]].score > t.nodes[children[j]].score
	})

	// Red takes the head of the descending order, blue the tail.
	best := children[0]
	if side != checkers.Red {
		best = children[len(children)-1]
	}
	return SearchResult{
		Move:  t.nodes[best].move,
		Score: t.nodes[best].score,
	}, nil
}

func (e *Engine) minimax(t *tree, id int, depth int, side checkers.Side) (int, error) {
	e.nodes++
	if depth == 0 {
		return MaterialScore(&t.nodes[id].board), nil
	}

	maximizing := side == checkers.Red
	best := scoreInf
	if maximizing {
		best = -scoreInf
	}

	moves := t.nodes[id].board.LegalMoves(side)
	if len(moves) == 0 && !t.nodes[id].board.HasMoves(side.Opponent()) {
		// both sides blocked: drawn
		return 0, nil
	}
	for _, mv := range moves {
		child, err := t.addChild(id, mv, side)
		if err != nil {
			return 0, err
		}
		score, err := e.minimax(t, child, depth-1, side.Opponent())
		if err != nil {
			return 0, err
		}
		t.nodes[child].score = score
		if maximizing && score > best {
			best = score
		}
		if !maximizing && score < best {
			best = score
		}
	}
	return best, nil
}
