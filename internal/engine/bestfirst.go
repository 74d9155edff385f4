package engine

import (
	"fmt"
	"sort"

	"checkers/internal/checkers"
)

// searchBestFirst grows the tree depth first, visiting the children of each
// node in descending FlatWeights order (shuffled first so equal scores do not
// always favour the same square) until the node budget or MaxDepth runs out.
// The answer is the first move on the path to the best node the searching
// side itself produced anywhere in the tree.
func (e *Engine) searchBestFirst(b *checkers.Board, side checkers.Side) (SearchResult, error) {
	t := newTree(b)
	budget := e.cfg.Budget
	if err := e.expand(t, rootID, side, side, 0, &budget); err != nil {
		return SearchResult{}, err
	}

	best := -1
	bestScore := 0
	stack := []int{rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[id]
		if id != rootID && n.mover == side && (best < 0 || n.score > bestScore) {
			best = id
			bestScore = n.score
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	if best < 0 {
		return SearchResult{}, fmt.Errorf("%w: %s has no legal moves", ErrNoMoveFound, side)
	}
	return SearchResult{
		Move:  t.firstMove(best),
		Score: bestScore,
	}, nil
}

func (e *Engine) expand(t *tree, id int, aiSide, toMove checkers.Side, depth int, budget *int) error {
	e.nodes++
	if depth >= e.cfg.MaxDepth || *budget <= 0 {
		return nil
	}

	moves := t.nodes[id].board.LegalMoves(toMove)
	for _, mv := range moves {
		if *budget <= 0 {
			break
		}
		child, err := t.addChild(id, mv, toMove)
		if err != nil {
			return err
		}
		t.nodes[child].score = FlatWeights.Score(&t.nodes[child].board, aiSide)
		*budget--
	}

	children := t.nodes[id].children
	e.rng.Shuffle(len(children), func(i, j int) {
		children[i], children[j] = children[j], children[i]
	})
	sort.SliceStable(children, func(i, j int) bool {
		return t.nodes[children[i]].score > t.nodes[children[j]].score
	})

	for _, child := range children {
		if err := e.expand(t, child, aiSide, toMove.Opponent(), depth+1, budget); err != nil {
			return err
		}
	}
	return nil
}
