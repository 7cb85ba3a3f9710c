package searcher

// Outcome is a game value from the perspective of the player to move.
type Outcome int8

const (
	Lose Outcome = -1
	Draw Outcome = 0
	Win  Outcome = 1
)

// Negate converts a value between the two players' perspectives.
func (o Outcome) Negate() Outcome {
	return -o
}

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Lose:
		return "lose"
	}
	return "unknown"
}

// worst sits below every real outcome so the first child always replaces it.
const worst Outcome = Lose - 1
