package searcher

import (
	"battleship/experiments/metrics"
	"battleship/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// MonteCarlo samples steps random candidates. A trial scores its candidate's
// outcome plus the hits of one rollout of depth-1 picks. When that rollout
// hits, the trial proposes the last cell it hit instead of the sampled
// candidate. The first trial with the highest score wins.
type MonteCarlo struct {
	depth      int
	steps      int
	goroutines int
	rng        *rand.Rand
	metrics    metrics.Collector
}

type trial struct {
	candidate game.Cell
	rng       *rand.Rand
	chosen    game.Cell
	score     float64
}

func NewMonteCarlo(depth, steps int, options ...Option) *MonteCarlo {
	if depth <= 0 || steps <= 0 {
		panic("monte carlo needs a positive depth and step count")
	}
	s := defaults(options)
	return &MonteCarlo{
		depth:      depth,
		steps:      steps,
		goroutines: s.goroutines,
		rng:        s.rng,
		metrics:    s.metrics,
	}
}

func (mc *MonteCarlo) FindTarget(state game.State) (Result, metrics.SearchMetric) {
	mc.metrics.Start(string(StrategyMonteCarlo), mc.goroutines, mc.depth, mc.steps)
	result := mc.search(state)
	return result, mc.metrics.Complete()
}

func (mc *MonteCarlo) search(state game.State) Result {
	moves := state.Board.Available(state.OwnGuesses)
	if len(moves) == 0 {
		return Result{}
	}

	// Draw every candidate and trial source up front, in trial order
	trials := make([]trial, mc.steps)
	for i := range trials {
		trials[i].candidate = moves[mc.rng.Intn(len(moves))]
		trials[i].rng = rand.New(rand.NewSource(mc.rng.Uint64()))
	}

	var g errgroup.Group
	g.SetLimit(mc.goroutines)
	for i := range trials {
		g.Go(func() error {
			mc.play(state, &trials[i])
			return nil
		})
	}
	_ = g.Wait() // goroutines only fill their slot, they never fail

	cells := make([]game.Cell, len(trials))
	scores := make([]float64, len(trials))
	for i, t := range trials {
		cells[i] = t.chosen
		scores[i] = t.score
	}
	return pick(cells, scores, true)
}

func (mc *MonteCarlo) play(state game.State, t *trial) {
	mc.metrics.AddNode()
	outcome, remaining := game.Strike(t.candidate, state.OpponentShips)
	t.score = immediate(outcome)
	t.chosen = t.candidate

	if mc.depth <= 1 {
		return
	}

	hits, n := Rollout(state.Board, remaining, mc.depth-1, t.rng)
	mc.metrics.AddPlayout()
	t.score += float64(n)
	if n == 0 {
		return
	}

	last := hits[n-1]
	if state.OwnGuesses.Contains(last) {
		// Only reachable when the believed set still holds guessed cells
		log.Warn().Msgf("rollout hit already guessed cell %v, keeping candidate %v", last, t.candidate)
		return
	}
	t.chosen = last
}
