package agent

import (
	"errors"

	"minimax/game"
	"minimax/searcher"

	"github.com/rs/zerolog/log"
)

type Option[S comparable, M comparable] func(a *minimaxAgent[S, M])

// WithFallback plays fallback whenever the solver runs out of budget.
func WithFallback[S comparable, M comparable](fallback Strategy[S, M]) Option[S, M] {
	return func(a *minimaxAgent[S, M]) {
		if fallback != nil {
			a.fallback = fallback
		}
	}
}

type minimaxAgent[S comparable, M comparable] struct {
	game     game.Game[S, M]
	solver   searcher.Solver[S, M]
	fallback Strategy[S, M]
}

// NewMinimaxAgent returns an agent that plays the move found by solver.
func NewMinimaxAgent[S comparable, M comparable](g game.Game[S, M], solver searcher.Solver[S, M], options ...Option[S, M]) Strategy[S, M] {
	if g == nil || solver == nil {
		panic("game and solver cannot be nil")
	}
	a := &minimaxAgent[S, M]{game: g, solver: solver}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *minimaxAgent[S, M]) FindMove(state S) (M, error) {
	if err := inProgress(a.game, state); err != nil {
		var none M
		return none, err
	}

	move, value, err := a.solver.Solve(state)
	if errors.Is(err, searcher.ErrBudgetExceeded) && a.fallback != nil {
		log.Warn().Msgf("search stopped (%v), falling back", err)
		return a.fallback.FindMove(state)
	}
	if err != nil {
		return move, err
	}
	log.Debug().Msgf("minimax picked %v for %s, value %s", move, a.game.CurrentPlayer(state), value)
	return move, nil
}
