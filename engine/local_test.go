package engine

import (
	"battleship/experiments/metrics"
	"battleship/game"
	"battleship/searcher"
	"battleship/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestSession(t *testing.T, size int, seed uint64) *game.Session {
	b := game.NewBoard(size)
	s, err := NewSession(b, game.FleetFor(b), [2]string{"p0", "p1"}, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return s
}

func requireFinished(t *testing.T, s *game.Session, winner string, gameMetric metrics.GameMetric, moves []metrics.MoveMetric) {
	require.True(t, s.Over())
	require.Equal(t, s.Players[s.Winner()].Name, winner)
	require.Equal(t, winner, gameMetric.Winner)
	require.Equal(t, s.ID, gameMetric.GameID)
	require.Len(t, moves, gameMetric.TotalMoves)
	require.LessOrEqual(t, gameMetric.TotalMoves, 2*s.Board.Area())
	for i, m := range moves {
		require.Equal(t, i+1, m.Step)
	}
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, game.DefaultBoardSize, 1)

	for _, p := range s.Players {
		require.Len(t, p.Ships, len(game.StandardFleet))
		require.Equal(t, 17, p.Afloat.Len())
	}

	_, err := NewSession(game.NewBoard(3), game.StandardFleet, [2]string{"a", "b"}, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}

func TestLocalEngine(t *testing.T) {
	t.Run("random agents finish a game", func(t *testing.T) {
		for seed := uint64(1); seed <= 5; seed++ {
			s := newTestSession(t, 4, seed)
			rng := rand.New(rand.NewSource(seed))
			e := LocalEngine(s, [2]agent.Agent{agent.NewRandomAgent(rng), agent.NewRandomAgent(rng)})

			winner, gameMetric, moves, err := e.Run()

			require.NoError(t, err)
			requireFinished(t, s, winner, gameMetric, moves)
		}
	})

	t.Run("search agents finish a game", func(t *testing.T) {
		params := searcher.Params{MinimaxDepth: 1, AlphaBetaDepth: 2, MonteCarloDepth: 8, MonteCarloSteps: 10}
		for _, strategy := range searcher.Strategies {
			for _, perfect := range []bool{true, false} {
				s := newTestSession(t, 5, 3)
				runner := searcher.NewRunner(params, searcher.WithSeed(3))
				agents := [2]agent.Agent{
					agent.NewEvaluationAgent(runner, strategy, perfect),
					agent.NewRandomAgent(rand.New(rand.NewSource(3))),
				}

				winner, gameMetric, moves, err := LocalEngine(s, agents).Run()

				require.NoError(t, err, "%s perfect=%v", strategy, perfect)
				requireFinished(t, s, winner, gameMetric, moves)
				require.Equal(t, string(strategy), moves[0].Strategy)
			}
		}
	})

	t.Run("perfect information wins quickly", func(t *testing.T) {
		// A depth-1 minimax that sees the real ships hits on every turn
		s := newTestSession(t, game.DefaultBoardSize, 7)
		runner := searcher.NewRunner(searcher.Params{MinimaxDepth: 1, AlphaBetaDepth: 1, MonteCarloDepth: 1, MonteCarloSteps: 1}, searcher.WithSeed(7))
		agents := [2]agent.Agent{
			agent.NewEvaluationAgent(runner, searcher.StrategyMinimax, true),
			agent.NewRandomAgent(rand.New(rand.NewSource(7))),
		}

		winner, gameMetric, moves, err := LocalEngine(s, agents).Run()

		require.NoError(t, err)
		require.Equal(t, "p0", winner)
		require.Equal(t, 33, gameMetric.TotalMoves, "17 hits for p0 and 16 moves for p1")
		for _, m := range moves {
			if m.Player == 0 {
				require.Equal(t, "hit", m.Outcome)
			}
		}
	})

	t.Run("agent errors abort the game", func(t *testing.T) {
		s := newTestSession(t, 4, 2)
		runner := searcher.NewRunner(searcher.Params{MinimaxDepth: 1, AlphaBetaDepth: 1, MonteCarloDepth: 1, MonteCarloSteps: 1})
		agents := [2]agent.Agent{
			agent.NewEvaluationAgent(runner, searcher.Strategy("bogus"), true),
			agent.NewRandomAgent(rand.New(rand.NewSource(2))),
		}

		_, _, _, err := LocalEngine(s, agents).Run()

		require.ErrorIs(t, err, searcher.ErrInvalidStrategy)
	})

	t.Run("missing agent", func(t *testing.T) {
		s := newTestSession(t, 4, 1)
		require.Panics(t, func() { LocalEngine(s, [2]agent.Agent{agent.NewRandomAgent(rand.New(rand.NewSource(1))), nil}) })
	})
}
