package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy   string
	Goroutines int
	Depth      int
	Steps      int
	Duration   time.Duration
	Nodes      int // recursive search calls, root included
	Playouts   int // rollouts performed
}

type MoveMetric struct {
	Step    int
	Player  int // Player index
	Target  string
	Outcome string
	SearchMetric
}

type GameMetric struct {
	GameID         string
	StartingPlayer int // Player index
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers counters for one search at a time. Counters are atomic
// so parallel branches of the same search may report concurrently.
type Collector interface {
	Start(strategy string, goroutines, depth, steps int)
	AddNode()
	AddPlayout()
	Complete() SearchMetric
}

type collector struct {
	strategy   string
	goroutines int
	depth      int
	steps      int
	startTime  time.Time
	nodes      atomic.Int64
	playouts   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, goroutines, depth, steps int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.goroutines = goroutines
	m.depth = depth
	m.steps = steps
	m.nodes.Store(0)
	m.playouts.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:   m.strategy,
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Steps:      m.steps,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Playouts:   int(m.playouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, goroutines, depth, steps int) {}
func (m *dummyCollector) AddNode()                                           {}
func (m *dummyCollector) AddPlayout()                                        {}
func (m *dummyCollector) Complete() SearchMetric                             { return SearchMetric{} }
