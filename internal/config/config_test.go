package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/render"
)

func noEnv(string) string { return "" }

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, engine.StrategyMinimax, cfg.Engine().Strategy)
	require.Zero(t, cfg.Search.MaxDepth)
	require.Equal(t, engine.DefaultMinimaxDepth, cfg.Engine().MaxDepth)
	first, err := cfg.FirstSide()
	require.NoError(t, err)
	require.Equal(t, checkers.Blue, first)
	require.Equal(t, render.StyleEmoji, cfg.Style())
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checkers.yaml")
	data := []byte(`search:
  strategy: bestfirst
  budget: 2000
  seed: 11
game:
  red: ai
  blue: ai
  first: red
render:
  style: ascii
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "bestfirst", cfg.Search.Strategy)
	require.Equal(t, 2000, cfg.Search.Budget)
	require.Equal(t, int64(11), cfg.Search.Seed)
	// untouched keys keep their defaults; depth follows the strategy
	require.Zero(t, cfg.Search.MaxDepth)
	require.Equal(t, engine.DefaultBestFirstDepth, cfg.Engine().MaxDepth)
	require.Equal(t, 300, cfg.Game.MaxPlies)
	require.Equal(t, PlayerAI, cfg.Game.Blue)
	require.Equal(t, render.StyleASCII, cfg.Style())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [1, 2"), 0o644))
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CHECKERS_STRATEGY":  "bestfirst",
		"CHECKERS_DEPTH":     "8",
		"CHECKERS_BUDGET":    "500",
		"CHECKERS_SEED":      "3",
		"CHECKERS_LOG_LEVEL": "debug",
		"CHECKERS_RENDER":    "ascii",
	}
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))
	require.NoError(t, cfg.Validate())
	require.Equal(t, engine.SearchConfig{
		Strategy: engine.StrategyBestFirst,
		MaxDepth: 8,
		Budget:   500,
		Seed:     3,
	}, cfg.Engine())
	require.Equal(t, "debug", cfg.Log.Level)

	cfg = Default()
	require.NoError(t, cfg.ApplyEnv(func(k string) string {
		if k == "CHECKERS_STRATEGY" {
			return "bestfirst"
		}
		return ""
	}))
	require.Equal(t, engine.DefaultBestFirstDepth, cfg.Engine().MaxDepth)

	cfg = Default()
	require.NoError(t, cfg.ApplyEnv(noEnv))
	require.Equal(t, Default(), cfg)

	err := cfg.ApplyEnv(func(k string) string {
		if k == "CHECKERS_DEPTH" {
			return "deep"
		}
		return ""
	})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"strategy", func(c *Config) { c.Search.Strategy = "mcts" }},
		{"depth", func(c *Config) { c.Search.MaxDepth = -1 }},
		{"player", func(c *Config) { c.Game.Red = "robot" }},
		{"first", func(c *Config) { c.Game.First = "green" }},
		{"plies", func(c *Config) { c.Game.MaxPlies = -5 }},
		{"style", func(c *Config) { c.Render.Style = "html" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
