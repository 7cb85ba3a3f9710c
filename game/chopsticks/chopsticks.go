// Package chopsticks implements the finger game: each player starts with one
// finger up on both hands, and a player touches one of their live hands to one
// of the opponent's live hands, adding fingers modulo five. A hand at zero is
// dead; a player with two dead hands loses.
//
// Counters wrap, so positions repeat and the game tree is cyclic. Exhaustive
// search needs a node or depth budget here.
package chopsticks

import (
	"fmt"

	"minimax/game"
)

const Fingers = 5

const instructions = "Each player begins with one finger up on each hand.\n" +
	"On your turn, touch one of your live hands to one of the opponent's live hands; " +
	"that hand gains as many fingers as yours shows, modulo five.\n" +
	"A hand showing zero is dead. The first player with two dead hands loses."

type Hand int8

const (
	Left Hand = iota
	Right
)

func (h Hand) String() string {
	if h == Left {
		return "l"
	}
	return "r"
}

// Move touches the mover's From hand to the opponent's To hand.
type Move struct {
	From Hand `json:"from"`
	To   Hand `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove reads the two-letter notation produced by Move.String.
func ParseMove(s string) (Move, error) {
	if len(s) != 2 {
		return Move{}, fmt.Errorf("move %q must be two letters", s)
	}
	from, err := parseHand(s[0])
	if err != nil {
		return Move{}, err
	}
	to, err := parseHand(s[1])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

func parseHand(b byte) (Hand, error) {
	switch b {
	case 'l':
		return Left, nil
	case 'r':
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown hand %q", b)
	}
}

// allMoves is the fixed generation order: ll, lr, rl, rr.
var allMoves = []Move{{Left, Left}, {Left, Right}, {Right, Left}, {Right, Right}}

// State holds the fingers of both players, indexed by Player.Index, and the
// player to move.
type State struct {
	Hands  [2][2]int8  `json:"hands"`
	Player game.Player `json:"player"`
}

func New(starting game.Player) State {
	return State{Hands: [2][2]int8{{1, 1}, {1, 1}}, Player: starting}
}

func (s State) String() string {
	return fmt.Sprintf("%s to move %d-%d %d-%d", s.Player, s.Hands[0][0], s.Hands[0][1], s.Hands[1][0], s.Hands[1][1])
}

func (s State) dead(p game.Player) bool {
	hands := s.Hands[p.Index()]
	return hands[Left] == 0 && hands[Right] == 0
}

type Game struct{}

func (g Game) LegalMoves(s State) []Move {
	if g.IsOver(s) {
		return nil
	}
	mine := s.Hands[s.Player.Index()]
	theirs := s.Hands[s.Player.Other().Index()]
	var moves []Move
	for _, m := range allMoves {
		if mine[m.From] > 0 && theirs[m.To] > 0 {
			moves = append(moves, m)
		}
	}
	return moves
}

func (Game) IsOver(s State) bool {
	return s.dead(game.First) || s.dead(game.Second)
}

func (g Game) Winner(s State, player game.Player) bool {
	return g.IsOver(s) && s.dead(player.Other()) && !s.dead(player)
}

func (g Game) ApplyMove(s State, move Move) (State, error) {
	if !game.IsLegal[State, Move](g, s, move) {
		return s, game.InvalidMove(move, "both hands must be live")
	}
	next := State{Hands: s.Hands, Player: s.Player.Other()}
	me, them := s.Player.Index(), s.Player.Other().Index()
	next.Hands[them][move.To] = (s.Hands[them][move.To] + s.Hands[me][move.From]) % Fingers
	return next, nil
}

func (Game) CurrentPlayer(s State) game.Player {
	return s.Player
}

func (Game) Validate(s State) error {
	if s.Player != game.First && s.Player != game.Second {
		return fmt.Errorf("unknown player %d", s.Player)
	}
	for _, hands := range s.Hands {
		for _, fingers := range hands {
			if fingers < 0 || fingers >= Fingers {
				return fmt.Errorf("hand with %d fingers out of range [0, %d)", fingers, Fingers)
			}
		}
	}
	return nil
}

func (Game) Instructions() string {
	return instructions
}
