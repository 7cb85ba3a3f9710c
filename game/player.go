package game

import "fmt"

// Player identifies one of the two seats. The zero value is NoPlayer, used for
// drawn or unfinished games.
type Player int8

const (
	NoPlayer Player = iota
	First
	Second
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	default:
		panic(fmt.Sprintf("player %d has no opponent", p))
	}
}

// Index maps First and Second to 0 and 1 for per-player arrays.
func (p Player) Index() int {
	switch p {
	case First:
		return 0
	case Second:
		return 1
	default:
		panic(fmt.Sprintf("player %d has no index", p))
	}
}

func (p Player) String() string {
	switch p {
	case First:
		return "p1"
	case Second:
		return "p2"
	default:
		return "none"
	}
}

// ParsePlayer is the inverse of String for the two seats.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "p1":
		return First, nil
	case "p2":
		return Second, nil
	default:
		return NoPlayer, fmt.Errorf("unknown player %q", s)
	}
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	if string(text) == "none" {
		*p = NoPlayer
		return nil
	}
	parsed, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
