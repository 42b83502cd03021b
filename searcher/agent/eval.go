package agent

import (
	"battleship/experiments/metrics"
	"battleship/game"
	"battleship/searcher"
	"fmt"

	"golang.org/x/exp/rand"
)

type evaluationAgent struct {
	runner   *searcher.Runner
	strategy searcher.Strategy
	perfect  bool
}

// NewEvaluationAgent returns an agent that searches with strategy. With
// perfect set it sees the opponent's real ships (benchmark mode); otherwise it
// treats every unguessed cell as possibly occupied.
func NewEvaluationAgent(runner *searcher.Runner, strategy searcher.Strategy, perfect bool) Agent {
	return evaluationAgent{runner: runner, strategy: strategy, perfect: perfect}
}

func (a evaluationAgent) FindTarget(session *game.Session, player int) (game.Cell, metrics.SearchMetric, error) {
	state := session.BeliefState(player, a.perfect)
	result, metric, err := a.runner.Run(string(a.strategy), state)
	if err != nil {
		return game.Cell{}, metric, err
	}
	if !result.Found {
		return game.Cell{}, metric, fmt.Errorf("%s: %w", a.strategy, ErrNoTarget)
	}
	return result.Cell, metric, nil
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns the baseline agent: a uniformly random unguessed cell.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindTarget(session *game.Session, player int) (game.Cell, metrics.SearchMetric, error) {
	moves := session.Board.Available(session.Players[player].Guesses)
	if len(moves) == 0 {
		return game.Cell{}, metrics.SearchMetric{}, ErrNoTarget
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Strategy: "random"}, nil
}
