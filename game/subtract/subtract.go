// Package subtract implements Subtract Square: players alternately subtract a
// positive perfect square not larger than the current value, and the player
// facing zero loses.
package subtract

import (
	"fmt"
	"math"

	"minimax/game"
)

// MaxValue bounds states received from outside the process. LegalMoves grows
// with the square root of the value.
const MaxValue = 1_000_000

const instructions = "A non-negative whole number has been chosen.\n" +
	"Players alternately subtract the square of a positive whole number that is not larger than the value.\n" +
	"The player whose turn starts at 0 loses."

// Move is the square to subtract.
type Move int

// State is the remaining value and the player to move.
type State struct {
	Value  int         `json:"value"`
	Player game.Player `json:"player"`
}

func New(value int, starting game.Player) State {
	if value < 0 {
		panic(fmt.Sprintf("subtract square value %d must be non-negative", value))
	}
	return State{Value: value, Player: starting}
}

func (s State) String() string {
	return fmt.Sprintf("%s to move at %d", s.Player, s.Value)
}

type Game struct{}

// LegalMoves lists the squares in ascending order.
func (Game) LegalMoves(s State) []Move {
	var moves []Move
	for n := 1; n*n <= s.Value; n++ {
		moves = append(moves, Move(n*n))
	}
	return moves
}

func (Game) IsOver(s State) bool {
	return s.Value == 0
}

// Winner is the player who moved into zero, i.e. not the one facing it.
func (g Game) Winner(s State, player game.Player) bool {
	return g.IsOver(s) && player != s.Player
}

func (g Game) ApplyMove(s State, move Move) (State, error) {
	if move <= 0 || int(move) > s.Value || !isSquare(int(move)) {
		return s, game.InvalidMove(move, fmt.Sprintf("not a square at most %d", s.Value))
	}
	return State{Value: s.Value - int(move), Player: s.Player.Other()}, nil
}

func (Game) CurrentPlayer(s State) game.Player {
	return s.Player
}

func (Game) Validate(s State) error {
	if s.Value < 0 || s.Value > MaxValue {
		return fmt.Errorf("value %d must be between 0 and %d", s.Value, MaxValue)
	}
	if s.Player != game.First && s.Player != game.Second {
		return fmt.Errorf("unknown player %d", s.Player)
	}
	return nil
}

func isSquare(n int) bool {
	root := int(math.Sqrt(float64(n)))
	for root*root > n {
		root--
	}
	for (root+1)*(root+1) <= n {
		root++
	}
	return root*root == n
}

func (Game) Instructions() string {
	return instructions
}
