package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent reports", func(t *testing.T) {
		c := NewCollector()
		c.Start("monte-carlo", 4, 10, 100)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 250; j++ {
					c.AddNode()
					c.AddPlayout()
				}
			}()
		}
		wg.Wait()

		m := c.Complete()
		require.Equal(t, 1000, m.Nodes)
		require.Equal(t, 1000, m.Playouts)
		require.Equal(t, "monte-carlo", m.Strategy)
		require.Equal(t, 4, m.Goroutines)
		require.Equal(t, 10, m.Depth)
		require.Equal(t, 100, m.Steps)
	})

	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 1, 2, 0)
		c.AddNode()
		c.AddNode()

		c.Start("alpha-beta", 1, 3, 0)
		c.AddNode()

		m := c.Complete()
		require.Equal(t, 1, m.Nodes)
		require.Equal(t, "alpha-beta", m.Strategy)
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax", 1, 2, 0)
		c.AddNode()
		c.AddPlayout()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
