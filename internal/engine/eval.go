package engine

import "checkers/internal/checkers"

// Weights gives the value of a man and of a king.
type Weights struct {
	Man  int
	King int
}

var (
	// MaterialWeights scores a king as ten men. Used by minimax.
	MaterialWeights = Weights{Man: 1, King: 10}
	// FlatWeights values every piece the same. Used by best-first.
	FlatWeights = Weights{Man: 10, King: 10}
)

// Score returns side's material minus the opponent's.
func (w Weights) Score(b *checkers.Board, side checkers.Side) int {
	score := 0
	for _, pc := range b.Squares {
		if pc == checkers.Empty {
			continue
		}
		v := w.Man
		if pc.IsKing() {
			v = w.King
		}
		if pc.Side() == side {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// MaterialScore is the side-agnostic score: positive is good for red.
func MaterialScore(b *checkers.Board) int {
	return MaterialWeights.Score(b, checkers.Red)
}

// Evaluate scores b for side with MaterialWeights.
func Evaluate(b *checkers.Board, side checkers.Side) int {
	return MaterialWeights.Score(b, side)
}
