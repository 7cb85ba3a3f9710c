package engine

import (
	"minimax/game"
	"minimax/meta"
	"minimax/metrics"
)

// Result describes one finished match.
type Result[S comparable] struct {
	Winner game.Player // NoPlayer for a draw or when the turn limit is hit
	Final  S
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}

type Option func(c *config)

type config struct {
	maxTurns int
}

// WithMaxTurns stops a match without a winner after the given number of moves.
func WithMaxTurns(turns int) Option {
	return func(c *config) {
		if turns > 0 {
			c.maxTurns = turns
		}
	}
}

func newConfig(options []Option) config {
	c := config{maxTurns: meta.MAX_TURNS}
	for _, option := range options {
		option(&c)
	}
	return c
}
