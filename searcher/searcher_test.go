package searcher

import (
	"battleship/game"

	"golang.org/x/exp/rand"
)

func cell(row, col int) game.Cell {
	return game.Cell{Row: row, Col: col}
}

type mockState struct {
	size            int
	ownShips        []game.Cell
	opponentShips   []game.Cell
	ownGuesses      []game.Cell
	opponentGuesses []game.Cell
}

func (m mockState) build() game.State {
	b := game.NewBoard(m.size)
	return game.State{
		Board:           b,
		OwnShips:        game.MustOccupiedSet(b, m.ownShips...),
		OpponentShips:   game.MustOccupiedSet(b, m.opponentShips...),
		OwnGuesses:      game.MustGuessHistory(b, m.ownGuesses...),
		OpponentGuesses: game.MustGuessHistory(b, m.opponentGuesses...),
	}
}

// randomState deals a few ships and guesses per side on a size×size board.
func randomState(size int, seed uint64) game.State {
	rng := rand.New(rand.NewSource(seed))
	b := game.NewBoard(size)
	deal := func(n int) []game.Cell {
		perm := rng.Perm(b.Area())
		cells := make([]game.Cell, n)
		for i := range cells {
			cells[i] = b.CellAt(perm[i])
		}
		return cells
	}
	ownGuesses := deal(size)
	opponentGuesses := deal(size)

	// Ships hit so far are no longer afloat
	afloat := func(cells, guesses []game.Cell) []game.Cell {
		h := game.MustGuessHistory(b, guesses...)
		out := []game.Cell{}
		for _, c := range cells {
			if !h.Contains(c) {
				out = append(out, c)
			}
		}
		return out
	}

	return mockState{
		size:            size,
		ownShips:        afloat(deal(size), opponentGuesses),
		opponentShips:   afloat(deal(size), ownGuesses),
		ownGuesses:      ownGuesses,
		opponentGuesses: opponentGuesses,
	}.build()
}

func fullBoard(size int) []game.Cell {
	return game.NewBoard(size).Cells()
}

func allExcept(size int, skip game.Cell) []game.Cell {
	cells := []game.Cell{}
	for _, c := range fullBoard(size) {
		if c != skip {
			cells = append(cells, c)
		}
	}
	return cells
}
