package agent

import (
	"sync"

	"minimax/game"

	"golang.org/x/exp/rand"
)

type randomAgent[S comparable, M comparable] struct {
	game game.Game[S, M]
	mu   sync.Mutex
	rng  *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// Agents built with the same seed play the same sequence of choices.
func NewRandomAgent[S comparable, M comparable](g game.Game[S, M], seed uint64) Strategy[S, M] {
	return &randomAgent[S, M]{game: g, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent[S, M]) FindMove(state S) (M, error) {
	var none M
	if err := inProgress(a.game, state); err != nil {
		return none, err
	}
	moves := a.game.LegalMoves(state)
	if err := game.CheckContract(a.game, state, moves); err != nil {
		return none, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return moves[a.rng.Intn(len(moves))], nil
}
