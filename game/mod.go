package game

import (
	"errors"
	"fmt"

	"minimax/utils"
)

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrContractViolation = errors.New("game contract violation")
)

// Game is the rule set of a two-player, sequential-move, zero-sum,
// perfect-information game. States are values: ApplyMove returns a new state
// and never modifies its argument. Any game that aims to be searchable by the
// minimax engines implements this interface.
type Game[S comparable, M comparable] interface {
	// LegalMoves lists the moves available to the current player, in the same
	// order for equal states. It is empty iff the state is terminal.
	LegalMoves(state S) []M
	IsOver(state S) bool
	// Winner reports whether player has won. Only meaningful once IsOver is
	// true; a drawn state returns false for both players.
	Winner(state S, player Player) bool
	ApplyMove(state S, move M) (S, error)
	CurrentPlayer(state S) Player
}

// Validator is implemented by games that can check a state received from
// outside the process (e.g. decoded from JSON) before it is searched.
type Validator[S comparable] interface {
	Validate(state S) error
}

// IsLegal reports whether move is one of the legal moves of state.
func IsLegal[S comparable, M comparable](g Game[S, M], state S, move M) bool {
	return utils.FindIndex(g.LegalMoves(state), move) >= 0
}

// InvalidMove wraps ErrInvalidMove with the offending move.
func InvalidMove[M any](move M, reason string) error {
	return fmt.Errorf("%w %v: %s", ErrInvalidMove, move, reason)
}

// CheckContract verifies that the terminal flag and the move list agree.
func CheckContract[S comparable, M comparable](g Game[S, M], state S, moves []M) error {
	over := g.IsOver(state)
	if over && len(moves) > 0 {
		return fmt.Errorf("%w: terminal state %v has %d legal moves", ErrContractViolation, state, len(moves))
	}
	if !over && len(moves) == 0 {
		return fmt.Errorf("%w: non-terminal state %v has no legal moves", ErrContractViolation, state)
	}
	return nil
}
