// Package stonehenge implements the cell-claiming board game. Players take
// turns claiming cells; holding at least half the cells of a ley-line captures
// it for good, and the first player holding at least half of all ley-lines
// wins.
package stonehenge

import (
	"fmt"
	"strings"

	"minimax/game"
)

const (
	unclaimedCell = '.'
	unclaimedLine = '@'
)

const instructions = "Players take turns claiming cells.\n" +
	"When a player captures at least half of the cells in a ley-line, then the player captures that ley-line.\n" +
	"The first player to capture at least half of the ley-lines is the winner.\n" +
	"A ley-line, once claimed, cannot be taken by the other player."

// Move claims the cell with the given index; cells are lettered from A.
type Move int

func (m Move) String() string {
	return string(rune('A' + int(m)))
}

func ParseMove(s string) (Move, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
		return 0, fmt.Errorf("move %q must be a cell letter", s)
	}
	return Move(s[0] - 'A'), nil
}

func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// State encodes claims as strings so that states stay comparable values: one
// byte per cell ('.', '1', '2') and one per ley-line ('@', '1', '2').
type State struct {
	Side   int         `json:"side"`
	Cells  string      `json:"cells"`
	Lines  string      `json:"lines"`
	Player game.Player `json:"player"`
}

func (s State) String() string {
	return fmt.Sprintf("%s to move cells=%s lines=%s", s.Player, s.Cells, s.Lines)
}

func mark(p game.Player) byte {
	return byte('0' + p)
}

// Game plays on one fixed board.
type Game struct {
	board *Board
}

func New(side int) Game {
	return Game{board: NewBoard(side)}
}

func (g Game) Board() *Board {
	return g.board
}

// Start returns the empty board with starting to move.
func (g Game) Start(starting game.Player) State {
	return State{
		Side:   g.board.side,
		Cells:  strings.Repeat(string(rune(unclaimedCell)), g.board.cells),
		Lines:  strings.Repeat(string(rune(unclaimedLine)), g.board.Lines()),
		Player: starting,
	}
}

// Score counts the ley-lines held by player.
func (g Game) Score(s State, player game.Player) int {
	return strings.Count(s.Lines, string(rune(mark(player))))
}

func (g Game) holdsHalf(s State, player game.Player) bool {
	return captures(g.Score(s, player), g.board.Lines())
}

func (g Game) LegalMoves(s State) []Move {
	if g.IsOver(s) {
		return nil
	}
	var moves []Move
	for i := 0; i < len(s.Cells); i++ {
		if s.Cells[i] == unclaimedCell {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

func (g Game) IsOver(s State) bool {
	return g.holdsHalf(s, game.First) || g.holdsHalf(s, game.Second)
}

func (g Game) Winner(s State, player game.Player) bool {
	return g.holdsHalf(s, player)
}

func (g Game) ApplyMove(s State, move Move) (State, error) {
	if !game.IsLegal[State, Move](g, s, move) {
		return s, game.InvalidMove(move, "cell is taken, off the board or the game is over")
	}

	own := mark(s.Player)
	cells := []byte(s.Cells)
	cells[move] = own
	lines := []byte(s.Lines)
	for _, l := range g.board.cellLines[move] {
		if lines[l] != unclaimedLine {
			continue
		}
		held := 0
		for _, c := range g.board.lines[l] {
			if cells[c] == own {
				held++
			}
		}
		if captures(held, len(g.board.lines[l])) {
			lines[l] = own
		}
	}

	return State{
		Side:   s.Side,
		Cells:  string(cells),
		Lines:  string(lines),
		Player: s.Player.Other(),
	}, nil
}

func (g Game) CurrentPlayer(s State) game.Player {
	return s.Player
}

func (g Game) Validate(s State) error {
	if s.Side != g.board.side {
		return fmt.Errorf("state side %d does not match board side %d", s.Side, g.board.side)
	}
	if len(s.Cells) != g.board.cells {
		return fmt.Errorf("state has %d cells, board has %d", len(s.Cells), g.board.cells)
	}
	if len(s.Lines) != g.board.Lines() {
		return fmt.Errorf("state has %d ley-lines, board has %d", len(s.Lines), g.board.Lines())
	}
	if s.Player != game.First && s.Player != game.Second {
		return fmt.Errorf("unknown player %d", s.Player)
	}
	if i := strings.IndexFunc(s.Cells, func(r rune) bool { return r != unclaimedCell && r != '1' && r != '2' }); i >= 0 {
		return fmt.Errorf("cell %s has unknown mark %q", Move(i), s.Cells[i])
	}
	if i := strings.IndexFunc(s.Lines, func(r rune) bool { return r != unclaimedLine && r != '1' && r != '2' }); i >= 0 {
		return fmt.Errorf("ley-line %d has unknown mark %q", i, s.Lines[i])
	}
	return g.validateLines(s)
}

// validateLines checks the ley-line markers against the claimed cells: a
// claimed line needs its owner to hold half of it, an unclaimed one must not
// be held by either player, and at most one player can have won.
func (g Game) validateLines(s State) error {
	for l, line := range g.board.lines {
		var held [2]int
		for _, c := range line {
			switch s.Cells[c] {
			case mark(game.First):
				held[0]++
			case mark(game.Second):
				held[1]++
			}
		}
		switch s.Lines[l] {
		case unclaimedLine:
			for _, p := range []game.Player{game.First, game.Second} {
				if captures(held[p.Index()], len(line)) {
					return fmt.Errorf("ley-line %d is unclaimed but %s holds %d of its %d cells", l, p, held[p.Index()], len(line))
				}
			}
		default:
			owner := game.Player(s.Lines[l] - '0')
			if !captures(held[owner.Index()], len(line)) {
				return fmt.Errorf("ley-line %d is claimed by %s with only %d of its %d cells", l, owner, held[owner.Index()], len(line))
			}
		}
	}
	if g.holdsHalf(s, game.First) && g.holdsHalf(s, game.Second) {
		return fmt.Errorf("both players hold half of the ley-lines")
	}
	return nil
}

func (Game) Instructions() string {
	return instructions
}
