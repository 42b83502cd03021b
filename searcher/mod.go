package searcher

import (
	"battleship/experiments/metrics"
	"battleship/game"
	"math"
)

// Scores for a single attack, from the maximizing side's perspective
const HIT = 1.0
const MISS = 0.0

// Result is the outcome of one search. Found is false for the terminal result
// of an exhausted board or a zero depth; Score is then 0.
type Result struct {
	Cell  game.Cell
	Score float64
	Found bool
}

// Searcher chooses the next cell to attack. Implementations never modify the
// state they are given. A Searcher is not safe for concurrent use: run one
// search at a time per instance.
type Searcher interface {
	FindTarget(state game.State) (Result, metrics.SearchMetric)
}

func immediate(outcome game.Outcome) float64 {
	if outcome == game.Hit {
		return HIT
	}
	return MISS
}

func worst(maximizing bool) float64 {
	if maximizing {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// improves compares strictly so the earliest candidate keeps a tie.
func improves(score, best float64, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

// pick reduces scored candidates in order, first best wins.
func pick(cells []game.Cell, scores []float64, maximizing bool) Result {
	best := Result{Score: worst(maximizing)}
	for i, c := range cells {
		if improves(scores[i], best.Score, maximizing) {
			best = Result{Cell: c, Score: scores[i], Found: true}
		}
	}
	if !best.Found {
		return Result{}
	}
	return best
}
