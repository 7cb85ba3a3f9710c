package agent

import (
	"fmt"

	"minimax/game"
	"minimax/searcher"
	"minimax/utils"
)

type roughAgent[S comparable, M comparable] struct {
	game  game.Game[S, M]
	rough *searcher.Rough[S, M]
}

// NewRoughOutcomeAgent returns an agent that plays the move leaving the
// opponent with the lowest rough estimate. Ties go to the first such move.
func NewRoughOutcomeAgent[S comparable, M comparable](g game.Game[S, M]) Strategy[S, M] {
	return &roughAgent[S, M]{game: g, rough: searcher.NewRough(g)}
}

func (a *roughAgent[S, M]) FindMove(state S) (M, error) {
	var best M
	if err := inProgress(a.game, state); err != nil {
		return best, err
	}

	moves := a.game.LegalMoves(state)
	if err := game.CheckContract(a.game, state, moves); err != nil {
		return best, err
	}
	scores := make([]searcher.Outcome, 0, len(moves))
	for _, move := range moves {
		child, err := a.game.ApplyMove(state, move)
		if err != nil {
			return best, fmt.Errorf("failed to apply legal move %v: %w", move, err)
		}
		estimate, err := a.rough.Estimate(child)
		if err != nil {
			return best, err
		}
		scores = append(scores, estimate.Negate())
	}
	return moves[utils.ArgMax(scores)], nil
}
