package searcher

import (
	"fmt"

	"minimax/game"
)

// Rough estimates a position by looking at most two plies ahead, so it
// terminates on games whose trees are cyclic or too large to solve.
type Rough[S comparable, M comparable] struct {
	game game.Game[S, M]
}

func NewRough[S comparable, M comparable](g game.Game[S, M]) *Rough[S, M] {
	if g == nil {
		panic("game cannot be nil")
	}
	return &Rough[S, M]{game: g}
}

// Estimate returns Win when the mover has won or can win with one move, Lose
// when the mover has lost or every move allows an immediate winning reply,
// and Draw otherwise.
func (r *Rough[S, M]) Estimate(state S) (Outcome, error) {
	mover := r.game.CurrentPlayer(state)
	moves := r.game.LegalMoves(state)
	if err := game.CheckContract(r.game, state, moves); err != nil {
		return Draw, err
	}
	if len(moves) == 0 {
		if r.game.Winner(state, mover) {
			return Win, nil
		}
		return Lose, nil
	}

	children := make([]S, 0, len(moves))
	for _, move := range moves {
		child, err := r.game.ApplyMove(state, move)
		if err != nil {
			return Draw, fmt.Errorf("failed to apply legal move %v: %w", move, err)
		}
		if r.game.IsOver(child) && r.game.Winner(child, mover) {
			return Win, nil
		}
		children = append(children, child)
	}

	for _, child := range children {
		wins, err := r.canWinNow(child, mover.Other())
		if err != nil {
			return Draw, err
		}
		if !wins {
			return Draw, nil
		}
	}
	return Lose, nil
}

// canWinNow reports whether player has a move from state that ends the game
// in their favor.
func (r *Rough[S, M]) canWinNow(state S, player game.Player) (bool, error) {
	moves := r.game.LegalMoves(state)
	if err := game.CheckContract(r.game, state, moves); err != nil {
		return false, err
	}
	for _, move := range moves {
		next, err := r.game.ApplyMove(state, move)
		if err != nil {
			return false, fmt.Errorf("failed to apply legal move %v: %w", move, err)
		}
		if r.game.IsOver(next) && r.game.Winner(next, player) {
			return true, nil
		}
	}
	return false, nil
}
