package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"checkers/internal/checkers"
)

var ErrUnknownStyle = errors.New("unknown render style")

type Style string

const (
	StyleASCII Style = "ascii"
	StyleEmoji Style = "emoji"
)

func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleASCII, StyleEmoji:
		return Style(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Every cell is two columns wide so the column letters line up.
var asciiCells = map[checkers.Piece]string{
	checkers.Empty:    ". ",
	checkers.RedMan:   "x ",
	checkers.RedKing:  "X ",
	checkers.BlueMan:  "o ",
	checkers.BlueKing: "O ",
}

const asciiDark = "  "

var emojiCells = map[checkers.Piece]string{
	checkers.Empty:    "  ",
	checkers.RedMan:   "\033[0;31m\033[1;31mⓄ \033[0m",
	checkers.RedKing:  "\033[0;31m\033[1;31mⓍ \033[0m",
	checkers.BlueMan:  "\033[1;34mⓄ \033[0m",
	checkers.BlueKing: "\033[1;34mⓍ \033[0m",
}

const emojiDark = "\033[0;43m  \033[0m"

// String draws b with row numbers on the left and column letters below.
func String(b *checkers.Board, style Style) string {
	cells, dark := asciiCells, asciiDark
	if style == StyleEmoji {
		cells, dark = emojiCells, emojiDark
	}

	var sb strings.Builder
	for r := 0; r < checkers.Rows; r++ {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < checkers.Cols; c++ {
			sq := r*checkers.Cols + c
			if !checkers.IsPlayable(sq) {
				sb.WriteString(dark)
				continue
			}
			sb.WriteString(cells[b.Squares[sq]])
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func Board(w io.Writer, b *checkers.Board, style Style) error {
	_, err := io.WriteString(w, String(b, style))
	return err
}

// Moves writes moves in notation, space separated.
func Moves(w io.Writer, moves []checkers.Move) error {
	parts := make([]string, 0, len(moves))
	for _, mv := range moves {
		parts = append(parts, mv.String())
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
