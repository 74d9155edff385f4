package checkers

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Blue   Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return "none"
}

// Opponent returns the other side; NoSide stays NoSide.
func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return NoSide
}

type Rank int8

const (
	RankNone Rank = iota
	Man
	King
)

func (r Rank) String() string {
	switch r {
	case Man:
		return "man"
	case King:
		return "king"
	}
	return "none"
}

// Piece 0 = empty; >0 red; <0 blue; abs = Rank.
type Piece int8

const (
	Empty    Piece = 0
	RedMan   Piece = Piece(Man)
	RedKing  Piece = Piece(King)
	BlueMan  Piece = -Piece(Man)
	BlueKing Piece = -Piece(King)
)

func MakePiece(side Side, r Rank) Piece {
	if r == RankNone || side == NoSide {
		return Empty
	}
	if side == Red {
		return Piece(r)
	}
	return -Piece(r)
}

func (p Piece) Rank() Rank {
	if p < 0 {
		return Rank(-p)
	}
	return Rank(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Blue
}

func (p Piece) IsKing() bool { return p.Rank() == King }

// Cell classifies a square of the board.
type Cell int8

const (
	CellDark Cell = iota
	CellEmpty
	CellPiece
)

func (c Cell) String() string {
	switch c {
	case CellDark:
		return "dark"
	case CellEmpty:
		return "empty"
	}
	return "piece"
}

type Board struct {
	Squares [NumSquares]Piece
}

type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Position = board + side to move.
type Position struct {
	Board      Board
	SideToMove Side
}

type Outcome int8

const (
	Ongoing Outcome = iota
	RedWins
	BlueWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case RedWins:
		return "red wins"
	case BlueWins:
		return "blue wins"
	case Draw:
		return "draw"
	}
	return "ongoing"
}
