package metrics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting one search", func(t *testing.T) {
		var recorder Recorder
		c := NewCollector(&recorder)

		c.Start("recursive")
		c.AddNode(0)
		c.AddNode(1)
		c.AddNode(2)
		c.AddNode(1)
		c.AddTerminal()
		got := c.Complete()

		require.Equal(t, "recursive", got.Engine)
		require.Equal(t, 4, got.Nodes)
		require.Equal(t, 1, got.Terminals)
		require.Equal(t, 2, got.MaxDepth, "Max depth should keep the deepest node")
		last, ok := recorder.Last()
		require.True(t, ok)
		require.Equal(t, got, last, "Sinks should observe the completed search")
	})

	t.Run("restarting resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("iterative")
		c.AddNode(3)
		c.Complete()

		c.Start("iterative")
		got := c.Complete()

		require.Zero(t, got.Nodes)
		require.Zero(t, got.MaxDepth)
	})

	t.Run("concurrent updates", func(t *testing.T) {
		c := NewCollector()
		c.Start("iterative")

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(depth int) {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode(depth)
				}
			}(i)
		}
		wg.Wait()
		got := c.Complete()

		require.Equal(t, 800, got.Nodes)
		require.Equal(t, 7, got.MaxDepth)
	})
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start("recursive")
	c.AddNode(5)
	c.AddTerminal()

	require.Equal(t, SearchMetric{}, c.Complete())
}

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	require.False(t, ok, "Empty recorder should have no last search")

	r.Observe(SearchMetric{Engine: "a"})
	r.Observe(SearchMetric{Engine: "b"})

	require.Len(t, r.Metrics(), 2)
	last, _ := r.Last()
	require.Equal(t, "b", last.Engine)
}

func TestPrometheusSink(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := NewPrometheusSink(reg)

	sink.Observe(SearchMetric{Engine: "iterative", Nodes: 10, Terminals: 4, MaxDepth: 3})
	sink.Observe(SearchMetric{Engine: "iterative", Nodes: 5, Terminals: 2, MaxDepth: 2})
	sink.Observe(SearchMetric{Engine: "recursive", Nodes: 1})

	require.Equal(t, 2.0, testutil.ToFloat64(sink.searches.WithLabelValues("iterative")))
	require.Equal(t, 15.0, testutil.ToFloat64(sink.nodes.WithLabelValues("iterative")))
	require.Equal(t, 6.0, testutil.ToFloat64(sink.terminals.WithLabelValues("iterative")))
	require.Equal(t, 2.0, testutil.ToFloat64(sink.maxDepth.WithLabelValues("iterative")), "Gauge should hold the latest depth")
	require.Equal(t, 1.0, testutil.ToFloat64(sink.nodes.WithLabelValues("recursive")))
	require.Equal(t, 2, testutil.CollectAndCount(sink.searches), "One series per engine")
}
