package searcher

import (
	"fmt"

	"minimax/metrics"
)

type Option func(c *config)

type config struct {
	maxNodes int
	maxDepth int
	metrics  metrics.Collector
}

// WithMaxNodes fails a search once it creates more than n nodes.
func WithMaxNodes(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxNodes = n
		}
	}
}

// WithMaxDepth fails a search once it reaches a node more than d plies below the root.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d > 0 {
			c.maxDepth = d
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func newConfig(options []Option) config {
	c := config{ // Unbounded by default
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// budget counts the nodes of a single search.
type budget struct {
	config
	nodes int
}

func (b *budget) visit(depth int) error {
	b.nodes++
	b.metrics.AddNode(depth)
	if b.maxNodes > 0 && b.nodes > b.maxNodes {
		return fmt.Errorf("%w: more than %d nodes", ErrBudgetExceeded, b.maxNodes)
	}
	if b.maxDepth > 0 && depth > b.maxDepth {
		return fmt.Errorf("%w: deeper than %d plies", ErrBudgetExceeded, b.maxDepth)
	}
	return nil
}
