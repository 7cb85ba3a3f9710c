package stonehenge

import "fmt"

const (
	MinSide = 1
	MaxSide = 5
)

// Board is the static geometry for one side length: the cells and the
// ley-lines (rows, left diagonals, right diagonals) through them.
//
// Rows 0..side-1 hold 2..side+1 cells; the last row holds side cells and is
// shifted right by one, so its cells sit on left diagonals 1..side.
type Board struct {
	side  int
	cells int
	lines [][]int // cell indices per ley-line
	// cellLines[c] lists the ley-lines through cell c
	cellLines [][]int
}

// NewBoard builds the geometry for side, which must lie in [MinSide, MaxSide]
// so that every cell has a letter.
func NewBoard(side int) *Board {
	if side < MinSide || side > MaxSide {
		panic(fmt.Sprintf("stonehenge side %d out of range [%d, %d]", side, MinSide, MaxSide))
	}

	var rows, lefts, rights [][]int
	lefts = make([][]int, side+1)
	rights = make([][]int, side+1)

	cell := 0
	for r := 0; r <= side; r++ {
		length := r + 2
		if r == side {
			length = side
		}
		row := make([]int, 0, length)
		for c := 0; c < length; c++ {
			left, right := c, r+1-c
			if r == side {
				left, right = c+1, side-c
			}
			row = append(row, cell)
			lefts[left] = append(lefts[left], cell)
			rights[right] = append(rights[right], cell)
			cell++
		}
		rows = append(rows, row)
	}

	b := &Board{side: side, cells: cell}
	b.lines = append(b.lines, rows...)
	b.lines = append(b.lines, lefts...)
	b.lines = append(b.lines, rights...)
	b.cellLines = make([][]int, b.cells)
	for i, line := range b.lines {
		for _, c := range line {
			b.cellLines[c] = append(b.cellLines[c], i)
		}
	}
	return b
}

func (b *Board) Side() int { return b.side }

func (b *Board) Cells() int { return b.cells }

func (b *Board) Lines() int { return len(b.lines) }

// Line returns a copy of the cell indices on ley-line i.
func (b *Board) Line(i int) []int {
	return append([]int(nil), b.lines[i]...)
}

// captures reports whether holding count cells of a ley-line of length n
// claims it: at least half of the cells.
func captures(count, n int) bool {
	return 2*count >= n
}
