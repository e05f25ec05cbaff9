package chess

import "strings"

type Side int8

const (
	Top Side = iota + 1
	Bottom
	Left
	Right
)

func ParseSide(s string) (Side, bool) {
	switch strings.ToUpper(s) {
	case "T":
		return Top, true
	case "B":
		return Bottom, true
	case "L":
		return Left, true
	case "R":
		return Right, true
	}
	return 0, false
}

func (s Side) String() string {
	switch s {
	case Top:
		return "T"
	case Bottom:
		return "B"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return ""
}

// Box is the lattice coordinate of a box cell (odd row, odd column).
type Box struct {
	Row int
	Col int
}

// NewBox converts a box index into its lattice coordinate.
func NewBox(row, col int) Box {
	return Box{Row: 2*row + 1, Col: 2*col + 1}
}

// Index is the inverse of NewBox.
func (b Box) Index() (row, col int) {
	return (b.Row - 1) / 2, (b.Col - 1) / 2
}

func (b Box) Edge(s Side) Edge {
	switch s {
	case Top:
		return Edge{Row: b.Row - 1, Col: b.Col}
	case Bottom:
		return Edge{Row: b.Row + 1, Col: b.Col}
	case Left:
		return Edge{Row: b.Row, Col: b.Col - 1}
	default:
		return Edge{Row: b.Row, Col: b.Col + 1}
	}
}

func (b Box) Edges() [4]Edge {
	return [...]Edge{
		b.Edge(Top),
		b.Edge(Left),
		b.Edge(Bottom),
		b.Edge(Right),
	}
}
