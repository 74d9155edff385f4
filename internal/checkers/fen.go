package checkers

import (
	"fmt"
	"strings"
)

var pieceChars = map[Piece]byte{
	RedMan:   'x',
	RedKing:  'X',
	BlueMan:  'o',
	BlueKing: 'O',
}

var charPieces = map[rune]Piece{
	'x': RedMan,
	'X': RedKing,
	'o': BlueMan,
	'O': BlueKing,
}

// Encode writes rows 0..7 separated by "/", runs of empty squares as a digit,
// then a space and "r" or "b" for the side to move.
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[indexOf(r, c)]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceChars[pc])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Blue {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('r')
	}
	return sb.String()
}

func DecodePosition(s string) (*Position, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: want \"<rows> <side>\"", ErrInvalidPosition)
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: %d rows", ErrInvalidPosition, len(rows))
	}
	var b Board
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return nil, fmt.Errorf("%w: row %d too long", ErrInvalidPosition, r)
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			pc, ok := charPieces[ch]
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidPosition, ch)
			}
			sq := indexOf(r, c)
			if !IsPlayable(sq) {
				return nil, fmt.Errorf("%w: piece on dark square %s", ErrInvalidPosition, cellText(sq))
			}
			b.Squares[sq] = pc
			c++
		}
		if c != Cols {
			return nil, fmt.Errorf("%w: row %d has %d squares", ErrInvalidPosition, r, c)
		}
	}

	var stm Side
	switch parts[1] {
	case "r":
		stm = Red
	case "b":
		stm = Blue
	default:
		return nil, fmt.Errorf("%w: side %q", ErrInvalidPosition, parts[1])
	}
	return &Position{Board: b, SideToMove: stm}, nil
}
