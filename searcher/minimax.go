package searcher

import (
	"battleship/experiments/metrics"
	"battleship/game"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Minimax alternates the querying side (maximizing) and its opponent
// (minimizing) for depth plies. Each side only ever chooses among the cells
// it has not guessed itself.
type Minimax struct {
	depth      int
	goroutines int
	leafSteps  int
	rng        *rand.Rand
	metrics    metrics.Collector
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 0 {
		panic("minimax depth cannot be negative")
	}
	s := defaults(options)
	return &Minimax{
		depth:      depth,
		goroutines: s.goroutines,
		leafSteps:  s.leafSteps,
		rng:        s.rng,
		metrics:    s.metrics,
	}
}

func (m *Minimax) FindTarget(state game.State) (Result, metrics.SearchMetric) {
	m.metrics.Start(string(StrategyMinimax), m.goroutines, m.depth, m.leafSteps)
	result := m.root(state)
	return result, m.metrics.Complete()
}

// root scores every candidate of the maximizing side, possibly in parallel,
// then reduces in scan order.
func (m *Minimax) root(state game.State) Result {
	m.metrics.AddNode()
	if m.depth == 0 {
		return Result{}
	}
	moves := state.Board.Available(state.OwnGuesses)
	if len(moves) == 0 {
		return Result{}
	}

	var rngs []*rand.Rand
	if m.leafSteps > 0 {
		rngs = branchRands(m.rng, len(moves))
	} else {
		rngs = make([]*rand.Rand, len(moves))
	}

	scores := make([]float64, len(moves))
	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for i, cell := range moves {
		g.Go(func() error {
			scores[i] = m.evaluate(state, cell, m.depth, true, rngs[i])
			return nil
		})
	}
	_ = g.Wait() // goroutines only fill their slot, they never fail

	return pick(moves, scores, true)
}

func (m *Minimax) search(state game.State, depth int, maximizing bool, rng *rand.Rand) Result {
	m.metrics.AddNode()
	if depth == 0 {
		return Result{Score: m.leaf(state, maximizing, rng)}
	}

	history := state.OpponentGuesses
	if maximizing {
		history = state.OwnGuesses
	}
	moves := state.Board.Available(history)
	if len(moves) == 0 {
		return Result{}
	}

	best := Result{Score: worst(maximizing)}
	for _, cell := range moves {
		score := m.evaluate(state, cell, depth, maximizing, rng)
		if improves(score, best.Score, maximizing) {
			best = Result{Cell: cell, Score: score, Found: true}
		}
	}
	return best
}

// evaluate is the immediate score of attacking cell plus the adversarial term.
// The maximizer subtracts the minimizer's reply; the minimizer adds the
// maximizer's reply.
func (m *Minimax) evaluate(state game.State, cell game.Cell, depth int, maximizing bool, rng *rand.Rand) float64 {
	child := state
	if maximizing {
		var outcome game.Outcome
		outcome, child.OpponentShips = game.Strike(cell, state.OpponentShips)
		child.OwnGuesses = state.OwnGuesses.With(cell)
		reply := m.search(child, depth-1, false, rng)
		return immediate(outcome) - reply.Score
	}

	var outcome game.Outcome
	outcome, child.OwnShips = game.Strike(cell, state.OwnShips)
	child.OpponentGuesses = state.OpponentGuesses.With(cell)
	reply := m.search(child, depth-1, true, rng)
	return -immediate(outcome) + reply.Score
}

func (m *Minimax) leaf(state game.State, maximizing bool, rng *rand.Rand) float64 {
	if m.leafSteps == 0 || rng == nil {
		return 0
	}
	m.metrics.AddPlayout()
	if maximizing {
		_, hits := Rollout(state.Board, state.OpponentShips, m.leafSteps, rng)
		return float64(hits)
	}
	_, hits := Rollout(state.Board, state.OwnShips, m.leafSteps, rng)
	return -float64(hits)
}
