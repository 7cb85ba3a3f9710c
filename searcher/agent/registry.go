package agent

import (
	"fmt"

	"minimax/game"
	"minimax/searcher"
)

const (
	Recursive = "recursive"
	Iterative = "iterative"
	Rough     = "rough"
	Random    = "random"
)

// Names lists the strategies New can build.
var Names = []string{Recursive, Iterative, Rough, Random}

// New builds the named strategy. The minimax strategies fall back to the
// rough-outcome strategy when options impose a budget they exceed.
func New[S comparable, M comparable](name string, g game.Game[S, M], seed uint64, options ...searcher.Option) (Strategy[S, M], error) {
	switch name {
	case Recursive:
		return NewMinimaxAgent(g, searcher.Solver[S, M](searcher.NewRecursive(g, options...)), WithFallback(NewRoughOutcomeAgent(g))), nil
	case Iterative:
		return NewMinimaxAgent(g, searcher.Solver[S, M](searcher.NewIterative(g, options...)), WithFallback(NewRoughOutcomeAgent(g))), nil
	case Rough:
		return NewRoughOutcomeAgent(g), nil
	case Random:
		return NewRandomAgent(g, seed), nil
	}
	return nil, fmt.Errorf("unknown strategy %q, expected one of %v", name, Names)
}
