package searcher

import (
	"battleship/game"

	"golang.org/x/exp/rand"
)

// Rollout attacks random cells of the board against a private copy of
// occupied, never picking the same cell twice, until the copy is empty or
// maxSteps cells were picked. It returns the cells that hit, in order.
func Rollout(board game.Board, occupied game.OccupiedSet, maxSteps int, rng *rand.Rand) ([]game.Cell, int) {
	remaining := occupied.Clone()
	hits := []game.Cell{}

	// Partial Fisher-Yates over scan indices: the first step entries are the
	// cells picked so far.
	order := make([]int, board.Area())
	for i := range order {
		order[i] = i
	}

	for step := 0; step < maxSteps && step < len(order) && !remaining.Empty(); step++ {
		j := step + rng.Intn(len(order)-step)
		order[step], order[j] = order[j], order[step]

		cell := board.CellAt(order[step])
		if game.Evaluate(cell, remaining) == game.Hit {
			remaining.Remove(cell)
			hits = append(hits, cell)
		}
	}
	return hits, len(hits)
}
