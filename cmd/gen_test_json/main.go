package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkers/internal/checkers"
	"checkers/internal/logging"
)

// TestCase is one position from a random game with everything the move
// generator says about it, for checking other implementations against.
// Moves carry square indices; destinations are keyed and listed by square
// name.
type TestCase struct {
	Position     string           `json:"position"`
	Moves        []checkers.Move  `json:"moves"`
	Destinations map[string][]string `json:"destinations"`
	Outcome      string           `json:"outcome"`
}

func main() {
	app := &cli.App{
		Name:  "gen_test_json",
		Usage: "Dump positions from random games as JSON move-generation fixtures",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "games", Value: 10, Usage: "number of random games"},
			&cli.IntFlag{Name: "max-plies", Value: 200, Usage: "plies per game"},
			&cli.Int64Flag{Name: "seed", Usage: "random seed (0 = time based)"},
			&cli.StringFlag{Name: "out", Value: "move_gen_test_data.json", Usage: "output file"},
		},
		Before: func(*cli.Context) error { return logging.Configure("info", true) },
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("gen_test_json")
	}
}

func run(cCtx *cli.Context) error {
	seed := cCtx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var testCases []TestCase
	numGames := cCtx.Int("games")
	for g := 0; g < numGames; g++ {
		first := checkers.Blue
		if g%2 == 1 {
			first = checkers.Red
		}
		testCases = append(testCases, randomGame(rng, first, cCtx.Int("max-plies"))...)
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		return err
	}
	out := cCtx.String("out")
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	log.Info().Int64("seed", seed).Int("cases", len(testCases)).Str("file", out).Msg("fixtures written")
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), numGames, out)
	return nil
}

func randomGame(rng *rand.Rand, first checkers.Side, maxPlies int) []TestCase {
	var cases []TestCase
	pos := checkers.NewInitialPosition(first)
	for ply := 0; ply < maxPlies; ply++ {
		moves := pos.Board.LegalMoves(pos.SideToMove)
		tc := TestCase{
			Position:     pos.Encode(),
			Moves:        moves,
			Destinations: map[string][]string{},
			Outcome:      pos.Board.Outcome().String(),
		}
		for _, m := range moves {
			from, _ := checkers.CellToText(m.From)
			to, _ := checkers.CellToText(m.To)
			tc.Destinations[from] = append(tc.Destinations[from], to)
		}
		cases = append(cases, tc)
		if len(moves) == 0 || pos.Board.Outcome() != checkers.Ongoing {
			break
		}
		if err := pos.Play(moves[rng.Intn(len(moves))]); err != nil {
			break
		}
	}
	return cases
}
