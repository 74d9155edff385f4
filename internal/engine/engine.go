package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	ErrNoMoveFound     = errors.New("no move found")
	ErrUnknownStrategy = errors.New("unknown search strategy")
)

type Strategy string

const (
	// StrategyMinimax is a full-width minimax to a fixed depth.
	StrategyMinimax Strategy = "minimax"
	// StrategyBestFirst is the budgeted, shuffled best-first expansion.
	StrategyBestFirst Strategy = "bestfirst"
)

const (
	DefaultMinimaxDepth   = 6
	DefaultBestFirstDepth = 10
	DefaultBudget         = 100_000
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyMinimax, StrategyBestFirst:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// SearchConfig bounds one search.
type SearchConfig struct {
	Strategy Strategy
	MaxDepth int   // plies; 0 picks the strategy default
	Budget   int   // nodes created by best-first; 0 picks DefaultBudget
	Seed     int64 // shuffle seed for best-first; 0 seeds from the clock
}

func DefaultConfig() SearchConfig {
	return SearchConfig{
		Strategy: StrategyMinimax,
		MaxDepth: DefaultMinimaxDepth,
		Budget:   DefaultBudget,
	}
}

// WithDefaults fills zero fields: the strategy's own depth, DefaultBudget,
// and minimax when no strategy is named.
func (c SearchConfig) WithDefaults() SearchConfig {
	if c.Strategy == "" {
		c.Strategy = StrategyMinimax
	}
	if c.MaxDepth <= 0 {
		if c.Strategy == StrategyBestFirst {
			c.MaxDepth = DefaultBestFirstDepth
		} else {
			c.MaxDepth = DefaultMinimaxDepth
		}
	}
	if c.Budget <= 0 {
		c.Budget = DefaultBudget
	}
	return c
}

// Engine picks moves. It keeps no search state between calls apart from
// the random source used by best-first.
type Engine struct {
	cfg   SearchConfig
	rng   *rand.Rand
	nodes int64
}

func NewEngine(cfg SearchConfig) *Engine {
	cfg = cfg.WithDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (e *Engine) Config() SearchConfig { return e.cfg }
