package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/render"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	PlayerHuman = "human"
	PlayerAI    = "ai"
)

type SearchConfig struct {
	Strategy string `yaml:"strategy"`
	MaxDepth int    `yaml:"max_depth"` // 0 = the strategy's default
	Budget   int    `yaml:"budget"`
	Seed     int64  `yaml:"seed"`
}

type GameConfig struct {
	Red      string `yaml:"red"`
	Blue     string `yaml:"blue"`
	First    string `yaml:"first"`
	MaxPlies int    `yaml:"max_plies"`
}

type RenderConfig struct {
	Style string `yaml:"style"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Config struct {
	Search SearchConfig `yaml:"search"`
	Game   GameConfig   `yaml:"game"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

func Default() Config {
	return Config{
		Search: SearchConfig{
			Strategy: string(engine.StrategyMinimax),
			Budget:   engine.DefaultBudget,
		},
		Game: GameConfig{
			Red:      PlayerAI,
			Blue:     PlayerHuman,
			First:    "blue",
			MaxPlies: 300,
		},
		Render: RenderConfig{Style: string(render.StyleEmoji)},
		Log:    LogConfig{Level: "info", Pretty: true},
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty), then the CHECKERS_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment; unset variables are
// ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("CHECKERS_STRATEGY"); v != "" {
		c.Search.Strategy = v
	}
	if v := getenv("CHECKERS_RENDER"); v != "" {
		c.Render.Style = v
	}
	if v := getenv("CHECKERS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"CHECKERS_DEPTH", &c.Search.MaxDepth},
		{"CHECKERS_BUDGET", &c.Search.Budget},
	}
	for _, e := range ints {
		v := getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, e.name, v)
		}
		*e.dst = n
	}
	if v := getenv("CHECKERS_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: CHECKERS_SEED=%q", ErrInvalidConfig, v)
		}
		c.Search.Seed = n
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := engine.ParseStrategy(c.Search.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Search.MaxDepth < 0 || c.Search.Budget < 0 {
		return fmt.Errorf("%w: negative search bound", ErrInvalidConfig)
	}
	for _, p := range []string{c.Game.Red, c.Game.Blue} {
		if p != PlayerHuman && p != PlayerAI {
			return fmt.Errorf("%w: player %q", ErrInvalidConfig, p)
		}
	}
	if _, err := c.FirstSide(); err != nil {
		return err
	}
	if c.Game.MaxPlies < 0 {
		return fmt.Errorf("%w: negative max_plies", ErrInvalidConfig)
	}
	if _, err := render.ParseStyle(c.Render.Style); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Engine converts the search section. An unset depth resolves to the
// chosen strategy's default.
func (c Config) Engine() engine.SearchConfig {
	return engine.SearchConfig{
		Strategy: engine.Strategy(c.Search.Strategy),
		MaxDepth: c.Search.MaxDepth,
		Budget:   c.Search.Budget,
		Seed:     c.Search.Seed,
	}.WithDefaults()
}

func (c Config) FirstSide() (checkers.Side, error) {
	switch c.Game.First {
	case "red":
		return checkers.Red, nil
	case "blue":
		return checkers.Blue, nil
	}
	return checkers.NoSide, fmt.Errorf("%w: first %q", ErrInvalidConfig, c.Game.First)
}

func (c Config) Style() render.Style { return render.Style(c.Render.Style) }
