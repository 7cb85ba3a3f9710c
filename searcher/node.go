package searcher

// node is one position pending in an iterative search.
type node[S comparable, M comparable] struct {
	state    S
	move     M // Move from the parent, zero for the root
	depth    int
	children []int
	expanded bool
}

// bestChild negates every child value and keeps the maximum.
func bestChild(children []int, values map[int]Outcome) Outcome {
	best := worst
	for _, child := range children {
		if value := values[child].Negate(); value > best {
			best = value
		}
	}
	return best
}
