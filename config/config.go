package config

import (
	"battleship/game"
	"battleship/searcher"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Recognized ranges. Minimax and alpha-beta grow as B^depth with B up to the
// board area, so their depth stays small.
const (
	MinBoardSize       = 2
	MaxBoardSize       = 26
	MaxTreeDepth       = 4
	MaxMonteCarloSteps = 100000
	MaxGoroutines      = 256
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	BoardSize       int
	Strategy        string
	MinimaxDepth    int
	AlphaBetaDepth  int
	MonteCarloDepth int
	MonteCarloSteps int
	LeafRollout     int // minimax leaf rollout length, 0 disables it
	Goroutines      int
	Seed            uint64 // 0 seeds from the clock
	Perfect         bool   // agents see the opponent's real ships
	Games           int    // games per matchup in benchmarks
	OutputDir       string
	LogLevel        string
}

func Default() Config {
	return Config{
		BoardSize:       game.DefaultBoardSize,
		Strategy:        string(searcher.StrategyMonteCarlo),
		MinimaxDepth:    2,
		AlphaBetaDepth:  2,
		MonteCarloDepth: 40,
		MonteCarloSteps: 20,
		Goroutines:      1,
		Perfect:         true,
		Games:           10,
		OutputDir:       "experiments",
		LogLevel:        "info",
	}
}

// Load reads an optional .env file then BATTLESHIP_* environment variables
// over the defaults.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	c := Default()
	var err error
	set := func(key string, dst *int) {
		if err != nil {
			return
		}
		if v, ok := os.LookupEnv(key); ok {
			*dst, err = strconv.Atoi(v)
			if err != nil {
				err = fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, v, err)
			}
		}
	}
	set("BATTLESHIP_BOARD_SIZE", &c.BoardSize)
	set("BATTLESHIP_MINIMAX_DEPTH", &c.MinimaxDepth)
	set("BATTLESHIP_ALPHA_BETA_DEPTH", &c.AlphaBetaDepth)
	set("BATTLESHIP_MONTE_CARLO_DEPTH", &c.MonteCarloDepth)
	set("BATTLESHIP_MONTE_CARLO_STEPS", &c.MonteCarloSteps)
	set("BATTLESHIP_LEAF_ROLLOUT", &c.LeafRollout)
	set("BATTLESHIP_GOROUTINES", &c.Goroutines)
	set("BATTLESHIP_GAMES", &c.Games)
	if err != nil {
		return Config{}, err
	}

	if v, ok := os.LookupEnv("BATTLESHIP_SEED"); ok {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: BATTLESHIP_SEED=%q: %w", ErrInvalidConfig, v, err)
		}
	}
	if v, ok := os.LookupEnv("BATTLESHIP_PERFECT"); ok {
		if c.Perfect, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%w: BATTLESHIP_PERFECT=%q: %w", ErrInvalidConfig, v, err)
		}
	}
	if v, ok := os.LookupEnv("BATTLESHIP_STRATEGY"); ok {
		c.Strategy = v
	}
	if v, ok := os.LookupEnv("BATTLESHIP_OUTPUT_DIR"); ok {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv("BATTLESHIP_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return c, nil
}

func inRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s=%d outside [%d, %d]", ErrInvalidConfig, name, v, lo, hi)
	}
	return nil
}

// Validate checks every parameter against its recognized range.
func (c Config) Validate() error {
	if _, err := searcher.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	cells := c.BoardSize * c.BoardSize
	return errors.Join(
		inRange("board size", c.BoardSize, MinBoardSize, MaxBoardSize),
		inRange("minimax depth", c.MinimaxDepth, 1, MaxTreeDepth),
		inRange("alpha-beta depth", c.AlphaBetaDepth, 1, MaxTreeDepth),
		inRange("monte carlo depth", c.MonteCarloDepth, 1, max(cells, 1)),
		inRange("monte carlo steps", c.MonteCarloSteps, 1, MaxMonteCarloSteps),
		inRange("leaf rollout", c.LeafRollout, 0, max(cells, 0)),
		inRange("goroutines", c.Goroutines, 1, MaxGoroutines),
		inRange("games", c.Games, 1, 100000),
	)
}

func (c Config) Board() game.Board {
	return game.NewBoard(c.BoardSize)
}

func (c Config) Params() searcher.Params {
	return searcher.Params{
		MinimaxDepth:    c.MinimaxDepth,
		AlphaBetaDepth:  c.AlphaBetaDepth,
		MonteCarloDepth: c.MonteCarloDepth,
		MonteCarloSteps: c.MonteCarloSteps,
	}
}

// SearchOptions turns the config into searcher options.
func (c Config) SearchOptions() []searcher.Option {
	options := []searcher.Option{
		searcher.WithGoroutines(c.Goroutines),
		searcher.WithLeafRollout(c.LeafRollout),
	}
	if c.Seed != 0 {
		options = append(options, searcher.WithSeed(c.Seed))
	}
	return options
}

// ApplyLogLevel sets the global zerolog level.
func (c Config) ApplyLogLevel() error {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}
