package main

import (
	"battleship/config"
	"battleship/engine"
	"battleship/experiments"
	"battleship/experiments/metrics"
	"battleship/game"
	"battleship/searcher"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const usage = `usage: battleship [flags] <command>

commands:
  search      run one search on a random mid-game position and print the target
  bench       play every strategy against each other and store the records
  throughput  self-play the configured strategy at increasing goroutine counts

flags:
`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	flag.IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "board size")
	flag.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "minimax | alpha-beta | monte-carlo")
	flag.IntVar(&cfg.MinimaxDepth, "minimax-depth", cfg.MinimaxDepth, "minimax search depth")
	flag.IntVar(&cfg.AlphaBetaDepth, "alpha-beta-depth", cfg.AlphaBetaDepth, "alpha-beta search depth")
	flag.IntVar(&cfg.MonteCarloDepth, "mc-depth", cfg.MonteCarloDepth, "monte carlo trial depth")
	flag.IntVar(&cfg.MonteCarloSteps, "mc-steps", cfg.MonteCarloSteps, "monte carlo trial count")
	flag.IntVar(&cfg.LeafRollout, "leaf-rollout", cfg.LeafRollout, "minimax leaf rollout length (0 = off)")
	flag.IntVar(&cfg.Goroutines, "goroutines", cfg.Goroutines, "goroutines per search")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = clock)")
	flag.BoolVar(&cfg.Perfect, "perfect", cfg.Perfect, "agents see the opponent's real ships")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "games per matchup")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "benchmark output directory")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := cfg.ApplyLogLevel(); err != nil {
		log.Fatal().Err(err).Send()
	}

	switch flag.Arg(0) {
	case "search":
		err = runSearch(cfg)
	case "bench":
		err = runExperiment(cfg, "strategies", experiments.RunStrategyExperiment)
	case "throughput":
		err = runExperiment(cfg, "throughput", experiments.RunThroughputExperiment)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg(flag.Arg(0) + " failed")
	}
}

func runSearch(cfg config.Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	board := cfg.Board()

	session, err := engine.NewSession(board, game.FleetFor(board), [2]string{"agent", "opponent"}, rng)
	if err != nil {
		return err
	}
	// Play a few random turns so the position is not empty
	for i := 0; i < board.Area()/4 && !session.Over(); i++ {
		moves := board.Available(session.Players[session.Current].Guesses)
		if _, err := session.Attack(moves[rng.Intn(len(moves))]); err != nil {
			return err
		}
	}
	if session.Over() {
		log.Info().Msg("random opening finished the game, nothing to search")
		return nil
	}

	runner := searcher.NewRunner(cfg.Params(), append(cfg.SearchOptions(), searcher.WithRand(rng), searcher.WithMetrics(metrics.NewCollector()))...)
	state := session.BeliefState(session.Current, cfg.Perfect)
	result, metric, err := runner.Run(cfg.Strategy, state)
	if err != nil {
		return err
	}

	log.Info().
		Str("strategy", cfg.Strategy).
		Stringer("target", result.Cell).
		Bool("found", result.Found).
		Float64("score", result.Score).
		Int("nodes", metric.Nodes).
		Int("playouts", metric.Playouts).
		Float64("elapsed_ms", searcher.Millis(metric.Duration)).
		Msg("search result")
	return nil
}

func runExperiment(cfg config.Config, name string, run func(config.Config) (experiments.Results, error)) error {
	results, err := run(cfg)
	if err != nil {
		return err
	}
	dir, err := experiments.Store(cfg.OutputDir, name, results)
	if err != nil {
		return err
	}
	log.Info().Msgf("records stored in %s", dir)
	return nil
}
