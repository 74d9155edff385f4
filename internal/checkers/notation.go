package checkers

import "fmt"

// Squares are written <col><row>: column letter a-h, row digit 0-7,
// e.g. index 33 is "b4".

// CellToText returns the two-character name of sq.
func CellToText(sq int) (string, error) {
	if !inBounds(sq) {
		return "", fmt.Errorf("%w: %d", ErrOutOfBounds, sq)
	}
	return cellText(sq), nil
}

func cellText(sq int) string {
	if !inBounds(sq) {
		return "??"
	}
	return string([]byte{byte('a' + colOf(sq)), byte('0' + rowOf(sq))})
}

// TextToCell parses a two-character square name.
func TextToCell(s string) (int, error) {
	if len(s) != 2 {
		return -1, fmt.Errorf("%w: %q: want 2 characters", ErrMalformedNotation, s)
	}
	col := int(s[0]) - 'a'
	row := int(s[1]) - '0'
	if !onBoard(row, col) {
		return -1, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
	}
	return indexOf(row, col), nil
}

// ParseMove parses a four-character move such as "a5b4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: %q: want 4 characters", ErrMalformedNotation, s)
	}
	from, err := TextToCell(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := TextToCell(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

func (m Move) String() string {
	return cellText(m.From) + cellText(m.To)
}
