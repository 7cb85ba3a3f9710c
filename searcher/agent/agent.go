package agent

import (
	"errors"

	"minimax/game"
)

var ErrGameOver = errors.New("game is over")

// Strategy picks a move for the player to move. Every strategy fails with
// ErrGameOver when asked to move in a finished game.
type Strategy[S comparable, M comparable] interface {
	FindMove(state S) (M, error)
}

// StrategyFunc adapts a plain function to a Strategy.
type StrategyFunc[S comparable, M comparable] func(state S) (M, error)

func (f StrategyFunc[S, M]) FindMove(state S) (M, error) {
	return f(state)
}

func inProgress[S comparable, M comparable](g game.Game[S, M], state S) error {
	if g.IsOver(state) {
		return ErrGameOver
	}
	return nil
}
