package experiments

import (
	"battleship/config"
	"battleship/engine"
	"battleship/experiments/metrics"
	"battleship/game"
	"battleship/searcher"
	"battleship/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const baselineID = 0

// AgentConfigs lists the random baseline followed by one agent per strategy.
func AgentConfigs(cfg config.Config) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{{ID: baselineID, Strategy: "random", Goroutines: 1}}
	for i, s := range searcher.Strategies {
		ac := metrics.AgentConfig{ID: i + 1, Strategy: string(s), Perfect: cfg.Perfect, Goroutines: cfg.Goroutines}
		switch s {
		case searcher.StrategyMinimax:
			ac.Depth = cfg.MinimaxDepth
			ac.Steps = cfg.LeafRollout
		case searcher.StrategyAlphaBeta:
			ac.Depth = cfg.AlphaBetaDepth
			ac.Goroutines = 1
		case searcher.StrategyMonteCarlo:
			ac.Depth = cfg.MonteCarloDepth
			ac.Steps = cfg.MonteCarloSteps
		}
		configs = append(configs, ac)
	}
	return configs
}

// MatchUps pairs every strategy against the baseline, then every two
// strategies against each other.
func MatchUps(configs []metrics.AgentConfig) [][2]metrics.AgentConfig {
	matchUps := [][2]metrics.AgentConfig{}
	for _, c := range configs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{configs[0], c})
	}
	for i := 1; i < len(configs); i++ {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return matchUps
}

// Results holds everything an experiment produced.
type Results struct {
	Configs []metrics.AgentConfig
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

// RunStrategyExperiment plays cfg.Games games per matchup, alternating the
// starting agent, and collects game and move records.
func RunStrategyExperiment(cfg config.Config) (Results, error) {
	rng := newRand(cfg.Seed)
	board := cfg.Board()
	configs := AgentConfigs(cfg)
	matchUps := MatchUps(configs)
	results := Results{Configs: configs}

	log.Info().Msgf("starting strategy experiment on a %dx%d board...", board.Size, board.Size)

	count := 0
	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < cfg.Games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(cfg, board, matchUp, i%2, rng)
			if err != nil {
				return results, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp[0].ID,
				Agent2:     matchUp[1].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, cfg.Games, winner)
		}
	}

	log.Info().Msg("completed strategy experiment")
	return results, nil
}

// Store writes the results under dir/name and returns the folder used.
func Store(dir, name string, results Results) (string, error) {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(results.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(results.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(cfg config.Config, board game.Board, matchUp [2]metrics.AgentConfig, starting int, rng *rand.Rand) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	names := [2]string{
		fmt.Sprintf("agent%d-%s", matchUp[0].ID, matchUp[0].Strategy),
		fmt.Sprintf("agent%d-%s", matchUp[1].ID, matchUp[1].Strategy),
	}
	if matchUp[0].ID == matchUp[1].ID {
		names[1] += "-2"
	}

	session, err := engine.NewSession(board, game.FleetFor(board), names, rng)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	session.Current = starting

	agents := [2]agent.Agent{
		createAgent(cfg, matchUp[0], rng),
		createAgent(cfg, matchUp[1], rng),
	}
	return engine.LocalEngine(session, agents).Run()
}

func createAgent(cfg config.Config, ac metrics.AgentConfig, rng *rand.Rand) agent.Agent {
	own := rand.New(rand.NewSource(rng.Uint64()))
	if ac.ID == baselineID {
		return agent.NewRandomAgent(own)
	}

	options := append(cfg.SearchOptions(),
		searcher.WithGoroutines(ac.Goroutines),
		searcher.WithRand(own),
		searcher.WithMetrics(metrics.NewCollector()),
	)
	runner := searcher.NewRunner(cfg.Params(), options...)
	return agent.NewEvaluationAgent(runner, searcher.Strategy(ac.Strategy), ac.Perfect)
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewSource(rand.Uint64()))
	}
	return rand.New(rand.NewSource(seed))
}
