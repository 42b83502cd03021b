package searcher

import (
	"battleship/experiments/metrics"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(s *settings)

type settings struct {
	goroutines int
	leafSteps  int
	rng        *rand.Rand
	metrics    metrics.Collector
}

func defaults(options []Option) settings {
	s := settings{
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

// WithGoroutines evaluates minimax root candidates and Monte Carlo trials on
// up to n goroutines. Results do not depend on n.
func WithGoroutines(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

// WithLeafRollout scores minimax leaves with a rollout of the given length
// instead of 0.
func WithLeafRollout(steps int) Option {
	return func(s *settings) {
		if steps > 0 {
			s.leafSteps = steps
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// branchRands derives one independent source per branch, in branch order, so
// parallel evaluation sees the same random streams as sequential evaluation.
func branchRands(rng *rand.Rand, n int) []*rand.Rand {
	rngs := make([]*rand.Rand, n)
	for i := range rngs {
		rngs[i] = rand.New(rand.NewSource(rng.Uint64()))
	}
	return rngs
}
