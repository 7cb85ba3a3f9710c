package searcher

import (
	"errors"

	"minimax/game"
)

var ErrBudgetExceeded = errors.New("search budget exceeded")

// Solver finds the value of a position and the first move that achieves it.
type Solver[S comparable, M comparable] interface {
	Solve(state S) (move M, value Outcome, err error)
}

// Estimator guesses the value of a position without searching to the end.
type Estimator[S comparable] interface {
	Estimate(state S) (Outcome, error)
}

// terminalValue scores a finished game for the player to move.
func terminalValue[S comparable, M comparable](g game.Game[S, M], state S) Outcome {
	mover := g.CurrentPlayer(state)
	switch {
	case g.Winner(state, mover):
		return Win
	case g.Winner(state, mover.Other()):
		return Lose
	}
	return Draw
}
