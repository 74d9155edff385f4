package engine

import "checkers/internal/checkers"

const rootID = 0

// node is one position of the search tree. Children are owned by index;
// parent is only read back when the best line is reconstructed.
type node struct {
	board    checkers.Board
	move     checkers.Move
	mover    checkers.Side // side that played move
	score    int
	parent   int
	children []int
}

// tree stores every node of one search in a single slice. It is built and
// thrown away by a single Search call.
type tree struct {
	nodes []node
}

func newTree(b *checkers.Board) *tree {
	t := &tree{nodes: make([]node, 1, 1024)}
	t.nodes[rootID] = node{
		board:  *b,
		mover:  checkers.NoSide,
		parent: -1,
	}
	return t
}

// addChild copies parent's board, plays mv for mover on it and links the
// result under parent.
func (t *tree) addChild(parent int, mv checkers.Move, mover checkers.Side) (int, error) {
	child := node{
		board:  t.nodes[parent].board,
		move:   mv,
		mover:  mover,
		parent: parent,
	}
	if err := child.board.ApplyMove(mv, mover); err != nil {
		return -1, err
	}
	id := len(t.nodes)
	t.nodes = append(t.nodes, child)
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id, nil
}

// firstMove walks from id up to the root and returns the move played at the
// root on the way to id.
func (t *tree) firstMove(id int) checkers.Move {
	for t.nodes[id].parent != rootID && t.nodes[id].parent >= 0 {
		id = t.nodes[id].parent
	}
	return t.nodes[id].move
}

func (t *tree) size() int { return len(t.nodes) }
