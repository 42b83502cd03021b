package game

import "fmt"

// State is the belief state a searcher works from, seen from the querying
// side ("own"). Searchers treat it as read-only and derive fresh copies for
// every branch they explore.
type State struct {
	Board           Board
	OwnShips        OccupiedSet  // own cells still afloat, targeted by the opponent
	OpponentShips   OccupiedSet  // opponent cells believed afloat
	OwnGuesses      GuessHistory // cells the querying side has attacked
	OpponentGuesses GuessHistory // cells the opponent has attacked
}

// Swap returns the same position seen from the opponent's side.
func (s State) Swap() State {
	return State{
		Board:           s.Board,
		OwnShips:        s.OpponentShips,
		OpponentShips:   s.OwnShips,
		OwnGuesses:      s.OpponentGuesses,
		OpponentGuesses: s.OwnGuesses,
	}
}

// Validate checks every cell against the board. Sets and histories built with
// their constructors are duplicate-free already.
func (s State) Validate() error {
	if s.Board.Size <= 0 {
		return fmt.Errorf("%w: board size %d", ErrMalformedState, s.Board.Size)
	}
	groups := []struct {
		name  string
		cells []Cell
	}{
		{"own ships", s.OwnShips.Cells()},
		{"opponent ships", s.OpponentShips.Cells()},
		{"own guesses", s.OwnGuesses.Cells()},
		{"opponent guesses", s.OpponentGuesses.Cells()},
	}
	for _, g := range groups {
		for _, c := range g.cells {
			if !s.Board.InBounds(c) {
				return fmt.Errorf("%s: %w", g.name, errOutOfBounds(c, s.Board))
			}
		}
	}
	return nil
}
