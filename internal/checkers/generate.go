package checkers

import "fmt"

// diagonals returns the two diagonal directions along rowDir, in the order
// (rowDir, -rowDir) then (rowDir, +rowDir) as {dRow, dCol}.
func diagonals(rowDir int) [2][2]int {
	return [2][2]int{{rowDir, -rowDir}, {rowDir, rowDir}}
}

// genPieceMoves appends every move of the piece on from. Men move forward
// only, kings scan the backward pair first and then the forward pair.
func genPieceMoves(b *Board, from int, moves *[]Move) {
	pc := b.Squares[from]
	if pc == Empty {
		return
	}
	side := pc.Side()
	if pc.IsKing() {
		genDiagonalMoves(b, from, side, -1, moves)
		genDiagonalMoves(b, from, side, +1, moves)
		return
	}
	genDiagonalMoves(b, from, side, forward(side), moves)
}

// Simple steps come before jumps. A step and a jump along the same diagonal
// are tested independently, captures are not mandatory.
func genDiagonalMoves(b *Board, from int, side Side, rowDir int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	dirs := diagonals(rowDir)

	for _, d := range dirs {
		r, c := row+d[0], col+d[1]
		if !onBoard(r, c) {
			continue
		}
		to := indexOf(r, c)
		if b.Squares[to] == Empty {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}

	enemy := side.Opponent()
	for _, d := range dirs {
		mr, mc := row+d[0], col+d[1]
		r, c := row+2*d[0], col+2*d[1]
		if !onBoard(r, c) {
			continue
		}
		if b.Squares[indexOf(mr, mc)].Side() != enemy {
			continue
		}
		to := indexOf(r, c)
		if b.Squares[to] == Empty {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

// LegalDestinations returns the squares the piece on from can move to. An
// empty square has no destinations.
func (b *Board) LegalDestinations(from int) ([]int, error) {
	if !inBounds(from) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfBounds, from)
	}
	var moves []Move
	genPieceMoves(b, from, &moves)
	out := make([]int, 0, len(moves))
	for _, mv := range moves {
		out = append(out, mv.To)
	}
	return out, nil
}

// LegalMoves lists every move of side, scanning squares 0..63.
func (b *Board) LegalMoves(side Side) []Move {
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := b.Squares[sq]
		if pc == Empty || pc.Side() != side {
			continue
		}
		genPieceMoves(b, sq, &moves)
	}
	return moves
}

// HasMoves is LegalMoves(side) != empty without building the list.
func (b *Board) HasMoves(side Side) bool {
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := b.Squares[sq]
		if pc == Empty || pc.Side() != side {
			continue
		}
		genPieceMoves(b, sq, &moves)
		if len(moves) > 0 {
			return true
		}
	}
	return false
}

// ValidateMove checks that side owns the piece on m.From and that m.To is one
// of its legal destinations.
func (b *Board) ValidateMove(m Move, side Side) error {
	if !inBounds(m.From) || !inBounds(m.To) {
		return fmt.Errorf("%w: %d-%d: %w", ErrInvalidMove, m.From, m.To, ErrOutOfBounds)
	}
	pc := b.Squares[m.From]
	if pc == Empty {
		return fmt.Errorf("%w: %s: no piece on %s", ErrInvalidMove, m, cellText(m.From))
	}
	if pc.Side() != side {
		return fmt.Errorf("%w: %s: piece on %s is not %s", ErrInvalidMove, m, cellText(m.From), side)
	}
	var moves []Move
	genPieceMoves(b, m.From, &moves)
	for _, mv := range moves {
		if mv.To == m.To {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidMove, m)
}

// IsJump reports whether m spans two rows, i.e. captures.
func (m Move) IsJump() bool {
	return abs(rowOf(m.To)-rowOf(m.From)) == 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
