package searcher

import (
	"battleship/experiments/metrics"
	"battleship/game"
	"math"
)

// AlphaBeta always scores from the side to move. A candidate is worth its
// immediate score minus the opponent's best reply (floored at 0). Candidates
// whose immediate score is already below the running best are skipped
// without recursing.
type AlphaBeta struct {
	depth   int
	metrics metrics.Collector
}

func NewAlphaBeta(depth int, options ...Option) *AlphaBeta {
	if depth < 0 {
		panic("alpha-beta depth cannot be negative")
	}
	s := defaults(options)
	return &AlphaBeta{
		depth:   depth,
		metrics: s.metrics,
	}
}

func (a *AlphaBeta) FindTarget(state game.State) (Result, metrics.SearchMetric) {
	a.metrics.Start(string(StrategyAlphaBeta), 1, a.depth, 0)
	result := a.search(state, a.depth)
	return result, a.metrics.Complete()
}

func (a *AlphaBeta) search(state game.State, depth int) Result {
	a.metrics.AddNode()
	if depth == 0 {
		return Result{}
	}

	best := Result{Score: math.Inf(-1)}
	for _, cell := range state.Board.Available(state.OwnGuesses) {
		outcome, remaining := game.Strike(cell, state.OpponentShips)
		score := immediate(outcome)
		if score < best.Score {
			continue
		}

		child := state
		child.OpponentShips = remaining
		child.OwnGuesses = state.OwnGuesses.With(cell)
		reply := a.search(child.Swap(), depth-1).Score
		if reply < 0 {
			reply = 0
		}

		score -= reply
		if score > best.Score {
			best = Result{Cell: cell, Score: score, Found: true}
		}
	}

	if !best.Found { // Exhausted board
		return Result{}
	}
	return best
}
