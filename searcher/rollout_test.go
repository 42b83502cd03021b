package searcher

import (
	"battleship/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRollout(t *testing.T) {
	t.Run("fully occupied board hits on every pick", func(t *testing.T) {
		b := game.NewBoard(3)
		occupied := game.MustOccupiedSet(b, fullBoard(3)...)

		hits, n := Rollout(b, occupied, 4, rand.New(rand.NewSource(1)))

		require.Equal(t, 4, n, "Should stop after maxSteps picks")
		require.Len(t, hits, n)
		seen := map[game.Cell]bool{}
		for _, c := range hits {
			require.False(t, seen[c], "Should never pick a cell twice")
			seen[c] = true
		}
		require.Equal(t, 9, occupied.Len(), "Caller's set should not change")
	})

	t.Run("stops when every occupied cell is hit", func(t *testing.T) {
		b := game.NewBoard(3)
		occupied := game.MustOccupiedSet(b, fullBoard(3)...)

		_, n := Rollout(b, occupied, 100, rand.New(rand.NewSource(2)))

		require.Equal(t, 9, n)
	})

	t.Run("empty set never hits", func(t *testing.T) {
		b := game.NewBoard(3)
		hits, n := Rollout(b, game.MustOccupiedSet(b), 9, rand.New(rand.NewSource(3)))

		require.Zero(t, n)
		require.Empty(t, hits)
	})

	t.Run("hit count is bounded by steps and targets", func(t *testing.T) {
		b := game.NewBoard(game.DefaultBoardSize)
		occupied := game.MustOccupiedSet(b, cell(0, 0), cell(4, 4), cell(4, 5), cell(9, 9))
		for seed := uint64(1); seed <= 50; seed++ {
			for _, k := range []int{1, 3, 10, 60, 200} {
				hits, n := Rollout(b, occupied, k, rand.New(rand.NewSource(seed)))

				require.LessOrEqual(t, n, min(k, occupied.Len()))
				for _, c := range hits {
					require.True(t, occupied.Contains(c), "Hits should come from the occupied set")
				}
			}
		}
	})

	t.Run("same seed replays the same rollout", func(t *testing.T) {
		b := game.NewBoard(game.DefaultBoardSize)
		occupied := game.MustOccupiedSet(b, fullBoard(5)...)

		hits1, _ := Rollout(b, occupied, 30, rand.New(rand.NewSource(42)))
		hits2, _ := Rollout(b, occupied, 30, rand.New(rand.NewSource(42)))

		require.Equal(t, hits1, hits2)
	})
}
