package engine

import (
	"battleship/experiments/metrics"
	"battleship/game"
	"battleship/searcher/agent"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Session *game.Session
	Agents  [2]agent.Agent
}

func LocalEngine(session *game.Session, agents [2]agent.Agent) *Engine {
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("missing agent for player %d", i))
		}
	}
	return &Engine{
		Session: session,
		Agents:  agents,
	}
}

// Run plays the game until a side has no ships afloat. Every attack is
// resolved by the session, so an agent proposing an illegal cell aborts the
// game with an error rather than corrupting it.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	s := e.Session
	// Every cell of both boards guessed is the longest possible game
	maxMoves := 2 * s.Board.Area()

	gameMetric := metrics.GameMetric{
		GameID:         s.ID,
		StartingPlayer: s.Current,
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("game %s: %s is starting", s.ID, s.Players[s.Current].Name)

	for !s.Over() && s.Turn < maxMoves {
		player := s.Current
		target, searchMetric, err := e.Agents[player].FindTarget(s, player)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("game %s turn %d: %w", s.ID, s.Turn, err)
		}

		result, err := s.Attack(target)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("game %s turn %d: %w", s.ID, s.Turn, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         s.Turn,
			Player:       player,
			Target:       target.String(),
			Outcome:      result.Outcome.String(),
			SearchMetric: searchMetric,
		})

		if result.Sunk != "" {
			log.Debug().Msgf("game %s: %s sunk %s's %s", s.ID, s.Players[player].Name, s.Players[1-player].Name, result.Sunk)
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = s.Turn

	winner := ""
	if s.Over() {
		winner = s.Players[s.Winner()].Name
	}
	gameMetric.Winner = winner

	log.Info().Msgf("game %s over after %d moves, winner: %s", s.ID, s.Turn, winner)
	return winner, gameMetric, moveMetrics, nil
}
