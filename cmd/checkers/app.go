package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkers/internal/checkers"
	"checkers/internal/config"
	"checkers/internal/engine"
	"checkers/internal/game"
	"checkers/internal/logging"
	"checkers/internal/render"
)

type app struct {
	in  *bufio.Scanner // shared by every human player
	out io.Writer
	cfg config.Config
}

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "strategy", Usage: "minimax or bestfirst"},
		&cli.IntFlag{Name: "depth", Aliases: []string{"d"}, Usage: "search depth in plies"},
		&cli.IntFlag{Name: "budget", Usage: "node budget for bestfirst"},
		&cli.Int64Flag{Name: "seed", Usage: "shuffle seed for bestfirst"},
	}
}

func positionFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "position",
		Aliases: []string{"p"},
		Usage:   `encoded position, e.g. "1x1x1x1x/x1x1x1x1/1x1x1x1x/8/8/o1o1o1o1/1o1o1o1o/o1o1o1o1 b"`,
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	a := &app{in: bufio.NewScanner(in), out: out}
	return &cli.App{
		Name:      "checkers",
		Usage:     "8x8 English draughts against a search engine",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "style", Usage: "board style: ascii or emoji"},
			&cli.StringFlag{Name: "log-level", Usage: "zerolog level"},
		},
		Before: a.before,
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "Play a game; each side is human or ai per config",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "red", Usage: "human or ai"},
					&cli.StringFlag{Name: "blue", Usage: "human or ai"},
					&cli.StringFlag{Name: "first", Usage: "red or blue"},
					&cli.IntFlag{Name: "max-plies", Usage: "declare a draw after this many plies (0 = never)"},
				}, searchFlags()...),
				Action: a.play,
			},
			{
				Name:  "selfplay",
				Usage: "Let the engine play itself",
				Flags: append([]cli.Flag{
					&cli.IntFlag{Name: "games", Aliases: []string{"n"}, Value: 1, Usage: "number of games"},
					&cli.IntFlag{Name: "max-plies", Usage: "declare a draw after this many plies (0 = never)"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "do not draw the board"},
				}, searchFlags()...),
				Action: a.selfplay,
			},
			{
				Name:  "versus",
				Usage: "Play minimax against best-first, swapping colours every game",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "games", Aliases: []string{"n"}, Value: 2, Usage: "number of games"},
					&cli.IntFlag{Name: "max-plies", Usage: "declare a draw after this many plies (0 = never)"},
					&cli.IntFlag{Name: "minimax-depth", Value: engine.DefaultMinimaxDepth, Usage: "minimax depth in plies"},
					&cli.IntFlag{Name: "bestfirst-depth", Value: engine.DefaultBestFirstDepth, Usage: "best-first depth cap"},
					&cli.IntFlag{Name: "budget", Value: engine.DefaultBudget, Usage: "best-first node budget"},
					&cli.Int64Flag{Name: "seed", Usage: "best-first shuffle seed"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "do not draw the board"},
				},
				Action: a.versus,
			},
			{
				Name:   "moves",
				Usage:  "List legal moves of the side to move",
				Flags:  []cli.Flag{positionFlag(), &cli.StringFlag{Name: "square", Usage: "only this square, e.g. a5"}},
				Action: a.moves,
			},
			{
				Name:   "best",
				Usage:  "Print the engine's move for the side to move",
				Flags:  append([]cli.Flag{positionFlag()}, searchFlags()...),
				Action: a.best,
			},
			{
				Name:   "show",
				Usage:  "Draw a position",
				Flags:  []cli.Flag{positionFlag()},
				Action: a.show,
			},
		},
	}
}

func chainBefore(before cli.BeforeFunc, after func()) cli.BeforeFunc {
	return func(cCtx *cli.Context) error {
		if before != nil {
			if err := before(cCtx); err != nil {
				return err
			}
		}
		after()
		return nil
	}
}

func (a *app) before(cCtx *cli.Context) error {
	cfg, err := config.Load(cCtx.String("config"))
	if err != nil {
		return err
	}
	if cCtx.IsSet("style") {
		cfg.Render.Style = cCtx.String("style")
	}
	if cCtx.IsSet("log-level") {
		cfg.Log.Level = cCtx.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return logging.Configure(cfg.Log.Level, cfg.Log.Pretty)
}

// searchConfig applies the command's search flags on top of the config.
func (a *app) searchConfig(cCtx *cli.Context) (engine.SearchConfig, error) {
	cfg := a.cfg
	if cCtx.IsSet("strategy") {
		cfg.Search.Strategy = cCtx.String("strategy")
	}
	if cCtx.IsSet("depth") {
		cfg.Search.MaxDepth = cCtx.Int("depth")
	}
	if cCtx.IsSet("budget") {
		cfg.Search.Budget = cCtx.Int("budget")
	}
	if cCtx.IsSet("seed") {
		cfg.Search.Seed = cCtx.Int64("seed")
	}
	if err := cfg.Validate(); err != nil {
		return engine.SearchConfig{}, err
	}
	return cfg.Engine(), nil
}

func (a *app) gameConfig(cCtx *cli.Context) (config.Config, error) {
	cfg := a.cfg
	for flag, dst := range map[string]*string{
		"red":   &cfg.Game.Red,
		"blue":  &cfg.Game.Blue,
		"first": &cfg.Game.First,
	} {
		if cCtx.IsSet(flag) {
			*dst = cCtx.String(flag)
		}
	}
	if cCtx.IsSet("max-plies") {
		cfg.Game.MaxPlies = cCtx.Int("max-plies")
	}
	return cfg, cfg.Validate()
}

func (a *app) player(kind string, scfg engine.SearchConfig) game.Player {
	if kind == config.PlayerHuman {
		return game.NewHumanPlayerFromScanner(a.in, a.out)
	}
	return game.NewAIPlayer(engine.NewEngine(scfg))
}

func (a *app) play(cCtx *cli.Context) error {
	cfg, err := a.gameConfig(cCtx)
	if err != nil {
		return err
	}
	scfg, err := a.searchConfig(cCtx)
	if err != nil {
		return err
	}
	first, _ := cfg.FirstSide()

	fmt.Fprint(a.out, "\n\n CHECKERS \n\n")
	games := game.NewManager()
	g := games.NewGame(first)
	match := game.NewMatch(games, g.ID,
		a.player(cfg.Game.Red, scfg),
		a.player(cfg.Game.Blue, scfg),
		game.Options{Out: a.out, Style: cfg.Style(), MaxPlies: cfg.Game.MaxPlies},
	)
	_, err = match.Run()
	if errors.Is(err, game.ErrQuit) {
		return nil
	}
	return err
}

func (a *app) selfplay(cCtx *cli.Context) error {
	cfg, err := a.gameConfig(cCtx)
	if err != nil {
		return err
	}
	scfg, err := a.searchConfig(cCtx)
	if err != nil {
		return err
	}
	first, _ := cfg.FirstSide()

	out := a.out
	if cCtx.Bool("quiet") {
		out = io.Discard
	}
	tally := map[checkers.Outcome]int{}
	games := game.NewManager()
	for i := 0; i < cCtx.Int("games"); i++ {
		g := games.NewGame(first)
		// Each side gets its own engine so best-first shuffles stay independent.
		red := game.NewAIPlayer(engine.NewEngine(scfg))
		blue := game.NewAIPlayer(engine.NewEngine(scfg))
		res, err := game.NewMatch(games, g.ID, red, blue,
			game.Options{Out: out, Style: cfg.Style(), MaxPlies: cfg.Game.MaxPlies},
		).Run()
		if err != nil {
			return err
		}
		tally[res.Outcome]++
		log.Info().Int("game", i+1).Str("id", res.ID).Str("outcome", res.Outcome.String()).Int("plies", res.Plies).Msg("selfplay game finished")
		fmt.Fprintf(a.out, "game %d: %s (%s, %d plies)\n", i+1, res.Outcome, res.Reason, res.Plies)
	}
	fmt.Fprintf(a.out, "red %d, blue %d, draw %d\n", tally[checkers.RedWins], tally[checkers.BlueWins], tally[checkers.Draw])
	return nil
}

func (a *app) versus(cCtx *cli.Context) error {
	cfg, err := a.gameConfig(cCtx)
	if err != nil {
		return err
	}
	first, _ := cfg.FirstSide()
	minimax := engine.SearchConfig{
		Strategy: engine.StrategyMinimax,
		MaxDepth: cCtx.Int("minimax-depth"),
	}
	bestFirst := engine.SearchConfig{
		Strategy: engine.StrategyBestFirst,
		MaxDepth: cCtx.Int("bestfirst-depth"),
		Budget:   cCtx.Int("budget"),
		Seed:     cCtx.Int64("seed"),
	}

	out := a.out
	if cCtx.Bool("quiet") {
		out = io.Discard
	}
	wins := map[engine.Strategy]int{}
	draws := 0
	games := game.NewManager()
	for i := 0; i < cCtx.Int("games"); i++ {
		redCfg, blueCfg := minimax, bestFirst
		if i%2 == 1 {
			redCfg, blueCfg = bestFirst, minimax
		}
		g := games.NewGame(first)
		res, err := game.NewMatch(games, g.ID,
			game.NewAIPlayer(engine.NewEngine(redCfg)),
			game.NewAIPlayer(engine.NewEngine(blueCfg)),
			game.Options{Out: out, Style: cfg.Style(), MaxPlies: cfg.Game.MaxPlies},
		).Run()
		if err != nil {
			return err
		}
		switch res.Outcome {
		case checkers.RedWins:
			wins[redCfg.Strategy]++
		case checkers.BlueWins:
			wins[blueCfg.Strategy]++
		default:
			draws++
		}
		fmt.Fprintf(a.out, "game %d: red %s, blue %s: %s (%s, %d plies)\n",
			i+1, redCfg.Strategy, blueCfg.Strategy, res.Outcome, res.Reason, res.Plies)
	}
	fmt.Fprintf(a.out, "%s %d, %s %d, draw %d\n",
		engine.StrategyMinimax, wins[engine.StrategyMinimax],
		engine.StrategyBestFirst, wins[engine.StrategyBestFirst], draws)
	return nil
}

func (a *app) position(cCtx *cli.Context) (*checkers.Position, error) {
	if s := cCtx.String("position"); s != "" {
		return checkers.DecodePosition(s)
	}
	first, err := a.cfg.FirstSide()
	if err != nil {
		return nil, err
	}
	return checkers.NewInitialPosition(first), nil
}

func (a *app) moves(cCtx *cli.Context) error {
	pos, err := a.position(cCtx)
	if err != nil {
		return err
	}
	if sq := cCtx.String("square"); sq != "" {
		from, err := checkers.TextToCell(sq)
		if err != nil {
			return err
		}
		dests, err := pos.Board.LegalDestinations(from)
		if err != nil {
			return err
		}
		moves := make([]checkers.Move, 0, len(dests))
		for _, to := range dests {
			moves = append(moves, checkers.Move{From: from, To: to})
		}
		return render.Moves(a.out, moves)
	}
	return render.Moves(a.out, pos.Board.LegalMoves(pos.SideToMove))
}

func (a *app) best(cCtx *cli.Context) error {
	pos, err := a.position(cCtx)
	if err != nil {
		return err
	}
	scfg, err := a.searchConfig(cCtx)
	if err != nil {
		return err
	}
	res, err := engine.NewEngine(scfg).Search(&pos.Board, pos.SideToMove)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s score=%d nodes=%d depth=%d\n", res.Move, res.Score, res.Nodes, res.Depth)
	return nil
}

func (a *app) show(cCtx *cli.Context) error {
	pos, err := a.position(cCtx)
	if err != nil {
		return err
	}
	if err := render.Board(a.out, &pos.Board, a.cfg.Style()); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s to move, %s\n", pos.SideToMove, pos.Board.Outcome())
	return nil
}
