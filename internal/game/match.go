package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/render"
)

const (
	ReasonNoMoves     = "no legal moves"
	ReasonNoMoveFound = "search found no move"
	ReasonPlyLimit    = "ply limit"
	ReasonQuit        = "quit"
)

type Options struct {
	Out      io.Writer // board and messages; nil discards them
	Style    render.Style
	MaxPlies int // 0 means no limit
}

type Result struct {
	ID      string
	Outcome checkers.Outcome
	Reason  string
	Plies   int
}

// Match drives one stored game: check for game over, ask the side to move
// for a move, apply it, draw the board, repeat.
type Match struct {
	games   *Manager
	id      string
	players [2]Player
	opts    Options
}

func NewMatch(games *Manager, id string, red, blue Player, opts Options) *Match {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Style == "" {
		opts.Style = render.StyleASCII
	}
	return &Match{
		games:   games,
		id:      id,
		players: [2]Player{checkers.Red: red, checkers.Blue: blue},
		opts:    opts,
	}
}

// Run plays until the game ends. A human quitting returns ErrQuit together
// with the result reached so far.
func (m *Match) Run() (Result, error) {
	g, err := m.games.Get(m.id)
	if err != nil {
		return Result{}, err
	}
	if g.Finished() {
		return Result{}, fmt.Errorf("%w: %s", ErrGameOver, m.id)
	}
	pos := *g.Pos
	plies := len(g.History)

	if err := render.Board(m.opts.Out, &pos.Board, m.opts.Style); err != nil {
		return Result{}, err
	}

	for {
		if outcome := pos.Board.Outcome(); outcome != checkers.Ongoing {
			return m.finish(outcome, ReasonNoMoves, plies)
		}
		if m.opts.MaxPlies > 0 && plies >= m.opts.MaxPlies {
			return m.finish(checkers.Draw, ReasonPlyLimit, plies)
		}

		side := pos.SideToMove
		player := m.players[side]
		start := time.Now()
		mv, err := player.ChooseMove(&pos)
		switch {
		case errors.Is(err, ErrQuit):
			log.Info().Str("game", m.id).Str("side", side.String()).Msg("player quit")
			return Result{ID: m.id, Outcome: checkers.Ongoing, Reason: ReasonQuit, Plies: plies}, err
		case errors.Is(err, engine.ErrNoMoveFound):
			return m.finish(checkers.Loss(side), ReasonNoMoveFound, plies)
		case err != nil:
			return Result{}, fmt.Errorf("%s move: %w", side, err)
		}

		before := pos.Board.Squares[mv.From]
		if err := pos.Play(mv); err != nil {
			return Result{}, fmt.Errorf("%s move %s: %w", side, mv, err)
		}
		plies++
		entry := HistoryEntry{
			Ply:       plies,
			Side:      side,
			Move:      mv,
			Capture:   mv.IsJump(),
			Promotion: !before.IsKing() && pos.Board.Squares[mv.To].IsKing(),
			IsAI:      !player.IsHuman(),
			Elapsed:   time.Since(start),
		}
		if err := m.games.Update(m.id, &pos, entry); err != nil {
			return Result{}, err
		}

		log.Info().
			Str("game", m.id).
			Int("ply", plies).
			Str("side", side.String()).
			Str("move", mv.String()).
			Bool("capture", entry.Capture).
			Dur("elapsed", entry.Elapsed).
			Msg("move played")

		label := "Player move"
		if entry.IsAI {
			label = "AI move"
		}
		fmt.Fprintf(m.opts.Out, "\n%s: %s\n", label, mv)
		if err := render.Board(m.opts.Out, &pos.Board, m.opts.Style); err != nil {
			return Result{}, err
		}
	}
}

func (m *Match) finish(outcome checkers.Outcome, reason string, plies int) (Result, error) {
	if err := m.games.Finish(m.id, outcome, reason); err != nil {
		return Result{}, err
	}
	log.Info().Str("game", m.id).Str("outcome", outcome.String()).Str("reason", reason).Int("plies", plies).Msg("game over")
	fmt.Fprintf(m.opts.Out, "\nGAME OVER: %s!\n\n", outcomeBanner(outcome))
	return Result{ID: m.id, Outcome: outcome, Reason: reason, Plies: plies}, nil
}

func outcomeBanner(o checkers.Outcome) string {
	switch o {
	case checkers.RedWins:
		return "RED WINS"
	case checkers.BlueWins:
		return "BLUE WINS"
	}
	return "DRAW"
}
