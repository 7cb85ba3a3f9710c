package searcher

import (
	"fmt"

	"minimax/game"
)

// Iterative computes the same result as Recursive with an explicit stack.
// Every node is popped twice: once to expand its children and once, after
// they are resolved, to take the best negated child value. Resolved children
// are discarded, so only pending nodes are held in memory.
type Iterative[S comparable, M comparable] struct {
	game game.Game[S, M]
	config
}

func NewIterative[S comparable, M comparable](g game.Game[S, M], options ...Option) *Iterative[S, M] {
	if g == nil {
		panic("game cannot be nil")
	}
	return &Iterative[S, M]{game: g, config: newConfig(options)}
}

func (it *Iterative[S, M]) Solve(state S) (M, Outcome, error) {
	it.metrics.Start("iterative")
	defer it.metrics.Complete()

	var none M
	b := &budget{config: it.config}
	if err := b.visit(0); err != nil {
		return none, Draw, err
	}

	const root = 0
	nextID := root + 1
	nodes := map[int]*node[S, M]{root: {state: state}}
	values := map[int]Outcome{}
	stack := []int{root}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := nodes[id]

		if n.expanded {
			values[id] = bestChild(n.children, values)
			if id != root {
				for _, child := range n.children {
					delete(nodes, child)
					delete(values, child)
				}
			}
			continue
		}

		moves := it.game.LegalMoves(n.state)
		if err := game.CheckContract(it.game, n.state, moves); err != nil {
			return none, Draw, err
		}
		if len(moves) == 0 {
			b.metrics.AddTerminal()
			values[id] = terminalValue(it.game, n.state)
			continue
		}

		// Revisit after every child is resolved
		n.expanded = true
		stack = append(stack, id)
		n.children = make([]int, 0, len(moves))
		for _, move := range moves {
			child, err := it.game.ApplyMove(n.state, move)
			if err != nil {
				return none, Draw, fmt.Errorf("failed to apply legal move %v: %w", move, err)
			}
			if err := b.visit(n.depth + 1); err != nil {
				return none, Draw, err
			}
			nodes[nextID] = &node[S, M]{state: child, move: move, depth: n.depth + 1}
			n.children = append(n.children, nextID)
			stack = append(stack, nextID)
			nextID++
		}
	}

	value := values[root]
	for _, child := range nodes[root].children {
		if values[child].Negate() == value {
			return nodes[child].move, value, nil
		}
	}
	return none, value, nil
}
