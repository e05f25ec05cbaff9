package chess

import "strconv"

type Kind int8

// The zero Kind marks a cell that has not been typed yet.
const (
	KindDot Kind = iota + 1
	KindHEdge
	KindVEdge
	KindBox
)

// KindAt derives the cell kind from lattice parity.
func KindAt(row, col int) Kind {
	switch {
	case row%2 == 0 && col%2 == 0:
		return KindDot
	case row%2 == 0:
		return KindHEdge
	case col%2 == 0:
		return KindVEdge
	default:
		return KindBox
	}
}

func (k Kind) String() string {
	switch k {
	case KindDot:
		return "Dot"
	case KindHEdge:
		return "HEdge"
	case KindVEdge:
		return "VEdge"
	case KindBox:
		return "Box"
	}
	return ""
}

func (k Kind) IsEdge() bool {
	return k == KindHEdge || k == KindVEdge
}

type Cell struct {
	Kind  Kind
	Owner PlayerID
}

func (c Cell) Claimed() bool {
	return c.Owner != Nobody
}

// Token is the one-character display form of the cell.
func (c Cell) Token() string {
	switch c.Kind {
	case KindDot:
		return "+"
	case KindHEdge:
		if c.Claimed() {
			return "-"
		}
	case KindVEdge:
		if c.Claimed() {
			return "|"
		}
	case KindBox:
		if c.Claimed() {
			return strconv.Itoa(int(c.Owner) % 10)
		}
	}
	return " "
}
