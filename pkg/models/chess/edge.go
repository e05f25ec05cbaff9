package chess

import (
	"fmt"
	"strings"
)

type Orientation int8

const (
	Horizontal Orientation = iota + 1
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	}
	return ""
}

func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(s) {
	case "h":
		return Horizontal, true
	case "v":
		return Vertical, true
	}
	return 0, false
}

// Edge is the lattice coordinate of an edge cell. Horizontal edges sit on
// even rows and odd columns, vertical edges on odd rows and even columns.
type Edge struct {
	Row int
	Col int
}

// NewEdge returns the edge joining two unit-adjacent dots.
func NewEdge(d1, d2 Dot) (Edge, error) {
	dx, dy := abs(d1.X-d2.X), abs(d1.Y-d2.Y)
	if dx+dy != 1 {
		return Edge{}, fmt.Errorf("%w: %v and %v", ErrNonAdjacentEndpoints, d1, d2)
	}
	return Edge{Row: d1.X + d2.X, Col: d1.Y + d2.Y}, nil
}

func (e Edge) Orientation() Orientation {
	switch {
	case e.Row%2 == 0 && e.Col%2 != 0:
		return Horizontal
	case e.Row%2 != 0 && e.Col%2 == 0:
		return Vertical
	}
	return 0
}

// Dots returns the two endpoints, lower coordinate first.
func (e Edge) Dots() (Dot, Dot) {
	if e.Orientation() == Horizontal {
		return NewDot(e.Row/2, (e.Col-1)/2), NewDot(e.Row/2, (e.Col+1)/2)
	}
	return NewDot((e.Row-1)/2, e.Col/2), NewDot((e.Row+1)/2, e.Col/2)
}

// NearBoxes returns the boxes on either side of the edge. Boxes outside the
// board are not filtered here; see Board.NearBoxes.
func (e Edge) NearBoxes() [2]Box {
	if e.Orientation() == Horizontal {
		return [...]Box{{Row: e.Row - 1, Col: e.Col}, {Row: e.Row + 1, Col: e.Col}}
	}
	return [...]Box{{Row: e.Row, Col: e.Col - 1}, {Row: e.Row, Col: e.Col + 1}}
}

// Command renders the edge in the endpoint move grammar.
func (e Edge) Command() string {
	d1, d2 := e.Dots()
	if e.Orientation() == Horizontal {
		return fmt.Sprintf("h %d %d %d", d1.X, d1.Y, d2.Y)
	}
	return fmt.Sprintf("v %d %d %d", d1.Y, d1.X, d2.X)
}

func (e Edge) String() string {
	d1, d2 := e.Dots()
	return fmt.Sprintf("%v -> %v", d1, d2)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
