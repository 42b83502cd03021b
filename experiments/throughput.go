package experiments

import (
	"battleship/config"
	"battleship/experiments/metrics"
	"battleship/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ThroughputGoroutines are the goroutine counts compared by the throughput
// experiment.
var ThroughputGoroutines = []int{1, 2, 4, 8, 16, 32}

// ThroughputConfigs lists one agent of the configured strategy per goroutine
// count.
func ThroughputConfigs(cfg config.Config) []metrics.AgentConfig {
	strategy := searcher.Strategy(cfg.Strategy)
	if strategy == searcher.StrategyAlphaBeta {
		// Alpha-beta is sequential, compare Monte Carlo instead
		strategy = searcher.StrategyMonteCarlo
	}

	configs := []metrics.AgentConfig{}
	for i, g := range ThroughputGoroutines {
		ac := metrics.AgentConfig{ID: i + 1, Strategy: string(strategy), Perfect: cfg.Perfect, Goroutines: g}
		if strategy == searcher.StrategyMinimax {
			ac.Depth = cfg.MinimaxDepth
			ac.Steps = cfg.LeafRollout
		} else {
			ac.Depth = cfg.MonteCarloDepth
			ac.Steps = cfg.MonteCarloSteps
		}
		configs = append(configs, ac)
	}
	return configs
}

// RunThroughputExperiment plays cfg.Games self-play games per goroutine count.
// Both sides share a config for the same playing strength and similar game
// length, so move durations are comparable across counts.
func RunThroughputExperiment(cfg config.Config) (Results, error) {
	rng := newRand(cfg.Seed)
	board := cfg.Board()
	configs := ThroughputConfigs(cfg)
	results := Results{Configs: configs}

	log.Info().Msgf("starting throughput experiment with %d goroutine counts...", len(configs))

	count := 0
	for _, ac := range configs {
		log.Info().Msgf("starting self-play with agent=%+v...", ac)

		for i := 0; i < cfg.Games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(cfg, board, [2]metrics.AgentConfig{ac, ac}, i%2, rng)
			if err != nil {
				return results, fmt.Errorf("goroutines %d game %d: %w", ac.Goroutines, i+1, err)
			}
			count++
			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     ac.ID,
				Agent2:     ac.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{Game: count, MoveMetric: mm})
			}
			log.Info().Msgf("completed game %d of %d with winner: %s", i+1, cfg.Games, winner)
		}
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}
