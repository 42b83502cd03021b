package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	b := NewBoard(DefaultBoardSize)
	occupied := MustOccupiedSet(b, Cell{2, 3}, Cell{2, 4})

	t.Run("hit iff the cell is occupied", func(t *testing.T) {
		for _, c := range b.Cells() {
			want := Miss
			if c == (Cell{2, 3}) || c == (Cell{2, 4}) {
				want = Hit
			}
			require.Equal(t, want, Evaluate(c, occupied), "cell %v", c)
		}
	})

	t.Run("evaluate leaves the set unchanged", func(t *testing.T) {
		Evaluate(Cell{2, 3}, occupied)
		require.Equal(t, 2, occupied.Len())
		require.True(t, occupied.Contains(Cell{2, 3}))
	})

	t.Run("empty set always misses", func(t *testing.T) {
		require.Equal(t, Miss, Evaluate(Cell{0, 0}, OccupiedSet{}))
	})
}

func TestStrike(t *testing.T) {
	b := NewBoard(DefaultBoardSize)
	occupied := MustOccupiedSet(b, Cell{2, 3}, Cell{2, 4})

	t.Run("hit returns a copy without the cell", func(t *testing.T) {
		outcome, remaining := Strike(Cell{2, 3}, occupied)

		require.Equal(t, Hit, outcome)
		require.Equal(t, []Cell{{2, 4}}, remaining.Cells())
		require.Equal(t, 2, occupied.Len(), "Original set should not change")
	})

	t.Run("miss returns the same cells", func(t *testing.T) {
		outcome, remaining := Strike(Cell{0, 0}, occupied)

		require.Equal(t, Miss, outcome)
		require.Equal(t, occupied.Cells(), remaining.Cells())
	})

	t.Run("outcome names", func(t *testing.T) {
		require.Equal(t, "hit", Hit.String())
		require.Equal(t, "miss", Miss.String())
	})
}

func TestOccupiedSet(t *testing.T) {
	b := NewBoard(3)

	t.Run("rejects malformed sets", func(t *testing.T) {
		_, err := NewOccupiedSet(b, Cell{0, 0}, Cell{0, 0})
		require.ErrorIs(t, err, ErrDuplicateCell)

		_, err = NewOccupiedSet(b, Cell{-1, 0})
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("clones are isolated", func(t *testing.T) {
		set := MustOccupiedSet(b, Cell{0, 0}, Cell{1, 1})
		clone := set.Clone()

		require.True(t, clone.Remove(Cell{0, 0}))
		require.False(t, clone.Remove(Cell{0, 0}), "Cell should only be removed once")
		require.True(t, set.Contains(Cell{0, 0}), "Original set should not change")
		require.Equal(t, 1, clone.Len())
	})

	t.Run("cells are listed in scan order", func(t *testing.T) {
		set := MustOccupiedSet(b, Cell{2, 0}, Cell{0, 2}, Cell{0, 1})
		require.Equal(t, []Cell{{0, 1}, {0, 2}, {2, 0}}, set.Cells())
	})
}

func TestStateValidate(t *testing.T) {
	b := NewBoard(3)

	t.Run("valid state", func(t *testing.T) {
		s := State{
			Board:         b,
			OwnShips:      MustOccupiedSet(b, Cell{0, 0}),
			OpponentShips: MustOccupiedSet(b, Cell{2, 2}),
			OwnGuesses:    MustGuessHistory(b, Cell{1, 1}),
		}
		require.NoError(t, s.Validate())
	})

	t.Run("cells from a larger board are out of bounds", func(t *testing.T) {
		big := NewBoard(5)
		s := State{
			Board:      b,
			OwnGuesses: MustGuessHistory(big, Cell{4, 4}),
		}
		err := s.Validate()
		require.ErrorIs(t, err, ErrMalformedState)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("zero board", func(t *testing.T) {
		require.ErrorIs(t, State{}.Validate(), ErrMalformedState)
	})

	t.Run("swap exchanges sides", func(t *testing.T) {
		s := State{
			Board:         b,
			OwnShips:      MustOccupiedSet(b, Cell{0, 0}),
			OpponentShips: MustOccupiedSet(b, Cell{2, 2}),
			OwnGuesses:    MustGuessHistory(b, Cell{1, 1}),
		}
		swapped := s.Swap()

		require.True(t, swapped.OwnShips.Contains(Cell{2, 2}))
		require.True(t, swapped.OpponentShips.Contains(Cell{0, 0}))
		require.True(t, swapped.OpponentGuesses.Contains(Cell{1, 1}))
		require.Zero(t, swapped.OwnGuesses.Len())
	})
}
