package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

// ErrQuit is returned when a human asks to leave the game.
var ErrQuit = errors.New("player quit")

type Player interface {
	IsHuman() bool
	ChooseMove(pos *checkers.Position) (checkers.Move, error)
}

type AIPlayer struct {
	engine *engine.Engine
}

func NewAIPlayer(e *engine.Engine) *AIPlayer {
	return &AIPlayer{engine: e}
}

func (p *AIPlayer) IsHuman() bool { return false }

func (p *AIPlayer) ChooseMove(pos *checkers.Position) (checkers.Move, error) {
	res, err := p.engine.Search(&pos.Board, pos.SideToMove)
	if err != nil {
		return checkers.Move{}, err
	}
	return res.Move, nil
}

// HumanPlayer reads moves such as "a5b4" line by line. Bad input is
// reported on out and asked for again; "exit" or end of input quits.
type HumanPlayer struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanPlayer(in io.Reader, out io.Writer) *HumanPlayer {
	return NewHumanPlayerFromScanner(bufio.NewScanner(in), out)
}

// NewHumanPlayerFromScanner reads from an existing scanner. Players that
// take turns on one input stream must share it, since a scanner buffers
// ahead of the line it returns.
func NewHumanPlayerFromScanner(in *bufio.Scanner, out io.Writer) *HumanPlayer {
	return &HumanPlayer{in: in, out: out}
}

func (p *HumanPlayer) IsHuman() bool { return true }

func (p *HumanPlayer) ChooseMove(pos *checkers.Position) (checkers.Move, error) {
	side := pos.SideToMove
	for {
		fmt.Fprintf(p.out, "\n%s: Enter move (ex. a5b4) or 'exit'.\n>", sideName(side))
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return checkers.Move{}, fmt.Errorf("read move: %w", err)
			}
			return checkers.Move{}, ErrQuit
		}
		line := strings.TrimSpace(p.in.Text())
		if line == "exit" {
			return checkers.Move{}, ErrQuit
		}

		mv, err := checkers.ParseMove(line)
		if err == nil {
			err = pos.Board.ValidateMove(mv, side)
		}
		if err != nil {
			fmt.Fprintf(p.out, "Invalid move! (%v)\n", err)
			continue
		}
		return mv, nil
	}
}

func sideName(side checkers.Side) string {
	s := side.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
