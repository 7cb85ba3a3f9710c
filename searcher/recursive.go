package searcher

import (
	"fmt"

	"minimax/game"
)

// Recursive is a depth-first negamax search on the call stack. Its memory
// grows with the depth of the game tree.
type Recursive[S comparable, M comparable] struct {
	game game.Game[S, M]
	config
}

func NewRecursive[S comparable, M comparable](g game.Game[S, M], options ...Option) *Recursive[S, M] {
	if g == nil {
		panic("game cannot be nil")
	}
	return &Recursive[S, M]{game: g, config: newConfig(options)}
}

// Solve returns the exact value of state for the player to move and the first
// move, in generation order, that achieves it. A finished game returns the
// zero move.
func (r *Recursive[S, M]) Solve(state S) (M, Outcome, error) {
	r.metrics.Start("recursive")
	defer r.metrics.Complete()

	b := &budget{config: r.config}
	return r.search(state, 0, b)
}

func (r *Recursive[S, M]) search(state S, depth int, b *budget) (M, Outcome, error) {
	var best M
	if err := b.visit(depth); err != nil {
		return best, Draw, err
	}

	moves := r.game.LegalMoves(state)
	if err := game.CheckContract(r.game, state, moves); err != nil {
		return best, Draw, err
	}
	if len(moves) == 0 {
		b.metrics.AddTerminal()
		return best, terminalValue(r.game, state), nil
	}

	bestValue := worst
	for _, move := range moves {
		child, err := r.game.ApplyMove(state, move)
		if err != nil {
			return best, Draw, fmt.Errorf("failed to apply legal move %v: %w", move, err)
		}
		_, value, err := r.search(child, depth+1, b)
		if err != nil {
			return best, Draw, err
		}
		if value.Negate() > bestValue {
			best, bestValue = move, value.Negate()
		}
	}
	return best, bestValue, nil
}
