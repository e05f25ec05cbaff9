package chess

import "fmt"

// Dot is a point of the dot lattice addressed by dot row X and dot column Y.
type Dot struct {
	X int
	Y int
}

func NewDot(x, y int) Dot {
	return Dot{X: x, Y: y}
}

// Lattice returns the cell coordinate of the dot in the board lattice.
func (d Dot) Lattice() (row, col int) {
	return 2 * d.X, 2 * d.Y
}

func (d Dot) String() string {
	return fmt.Sprintf("(%d, %d)", d.X, d.Y)
}
