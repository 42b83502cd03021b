package searcher

import (
	"battleship/experiments/metrics"
	"battleship/game"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Strategy string

const (
	StrategyMinimax    Strategy = "minimax"
	StrategyAlphaBeta  Strategy = "alpha-beta"
	StrategyMonteCarlo Strategy = "monte-carlo"
)

var Strategies = []Strategy{StrategyMinimax, StrategyAlphaBeta, StrategyMonteCarlo}

var ErrInvalidStrategy = errors.New("invalid strategy name")

func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of %v)", ErrInvalidStrategy, name, Strategies)
}

// Params holds the search budget of each strategy.
type Params struct {
	MinimaxDepth    int
	AlphaBetaDepth  int
	MonteCarloDepth int
	MonteCarloSteps int
}

// Runner dispatches a search to a strategy by name and times it.
type Runner struct {
	searchers map[Strategy]Searcher
}

// NewRunner builds one searcher per strategy sharing the given options.
// Each strategy gets its own random source so their streams never interleave.
func NewRunner(params Params, options ...Option) *Runner {
	base := defaults(options)
	withOwnRand := func() []Option {
		own := make([]Option, 0, len(options)+1)
		own = append(own, options...)
		return append(own, WithRand(rand.New(rand.NewSource(base.rng.Uint64()))))
	}

	return &Runner{
		searchers: map[Strategy]Searcher{
			StrategyMinimax:    NewMinimax(params.MinimaxDepth, withOwnRand()...),
			StrategyAlphaBeta:  NewAlphaBeta(params.AlphaBetaDepth, options...),
			StrategyMonteCarlo: NewMonteCarlo(params.MonteCarloDepth, params.MonteCarloSteps, withOwnRand()...),
		},
	}
}

// Run validates the state, resolves the strategy, then times the search call
// alone. The returned metric's Duration is that measurement.
func (r *Runner) Run(name string, state game.State) (Result, metrics.SearchMetric, error) {
	strategy, err := ParseStrategy(name)
	if err != nil {
		return Result{}, metrics.SearchMetric{}, err
	}
	if err := state.Validate(); err != nil {
		return Result{}, metrics.SearchMetric{}, fmt.Errorf("%s search: %w", strategy, err)
	}
	s := r.searchers[strategy]

	start := time.Now()
	result, metric := s.FindTarget(state)
	elapsed := time.Since(start)

	metric.Strategy = string(strategy)
	metric.Duration = elapsed

	log.Debug().
		Str("strategy", string(strategy)).
		Stringer("target", result.Cell).
		Bool("found", result.Found).
		Float64("score", result.Score).
		Int("nodes", metric.Nodes).
		Float64("elapsed_ms", Millis(elapsed)).
		Msg("search complete")

	return result, metric, nil
}

// Millis reports d in fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
