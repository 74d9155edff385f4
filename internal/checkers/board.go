package checkers

import "fmt"

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols

	// Men start on the three rows closest to their own edge.
	startRows = 3
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func inBounds(sq int) bool { return sq >= 0 && sq < NumSquares }

// IsPlayable reports whether sq is a light (playable) square. The pattern is
// fixed: a square is playable when row+col is odd.
func IsPlayable(sq int) bool {
	if !inBounds(sq) {
		return false
	}
	return (rowOf(sq)+colOf(sq))%2 == 1
}

// promotionRow is the far rank for a side's men.
func promotionRow(side Side) int {
	if side == Red {
		return Rows - 1
	}
	if side == Blue {
		return 0
	}
	return -1
}

// forward is the row delta a man of side moves along.
func forward(side Side) int {
	if side == Red {
		return +1
	}
	if side == Blue {
		return -1
	}
	return 0
}

func NewInitialBoard() *Board {
	var b Board
	for r := 0; r < startRows; r++ {
		for c := 0; c < Cols; c++ {
			if (r+c)%2 == 0 {
				continue
			}
			b.Squares[indexOf(r, c)] = RedMan
			b.Squares[indexOf(Rows-1-r, Cols-1-c)] = BlueMan
		}
	}
	return &b
}

func NewInitialPosition(first Side) *Position {
	return &Position{
		Board:      *NewInitialBoard(),
		SideToMove: first,
	}
}

// At returns the piece on sq.
func (b *Board) At(sq int) (Piece, error) {
	if !inBounds(sq) {
		return Empty, fmt.Errorf("%w: %d", ErrOutOfBounds, sq)
	}
	return b.Squares[sq], nil
}

// CellAt classifies sq as dark, empty or occupied.
func (b *Board) CellAt(sq int) (Cell, error) {
	pc, err := b.At(sq)
	if err != nil {
		return CellDark, err
	}
	if !IsPlayable(sq) {
		return CellDark, nil
	}
	if pc == Empty {
		return CellEmpty, nil
	}
	return CellPiece, nil
}

// SideAt returns the owner of the piece on sq, NoSide when empty.
func (b *Board) SideAt(sq int) (Side, error) {
	pc, err := b.At(sq)
	if err != nil {
		return NoSide, err
	}
	return pc.Side(), nil
}

// RankAt returns the rank of the piece on sq, RankNone when empty.
func (b *Board) RankAt(sq int) (Rank, error) {
	pc, err := b.At(sq)
	if err != nil {
		return RankNone, err
	}
	return pc.Rank(), nil
}

// Count returns how many men and kings side has on the board.
func (b *Board) Count(side Side) (men, kings int) {
	for _, pc := range b.Squares {
		if pc == Empty || pc.Side() != side {
			continue
		}
		if pc.IsKing() {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}
