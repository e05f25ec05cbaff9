package chess

import (
	"fmt"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/grid"
)

// Board is a Dots-and-Boxes board stored as a (2R+1)x(2C+1) lattice of
// dots, edges and boxes.
type Board struct {
	BoxRows int
	BoxCols int
	cells   *grid.Grid[Cell]
}

func NewBoard(boxRows, boxCols int) (*Board, error) {
	if boxRows < 1 || boxCols < 1 {
		return nil, fmt.Errorf("%w: %dx%d boxes", ErrInvalidDimension, boxRows, boxCols)
	}

	cells, err := grid.New[Cell](2*boxRows+1, 2*boxCols+1)
	if err != nil {
		return nil, err
	}

	b := &Board{
		BoxRows: boxRows,
		BoxCols: boxCols,
		cells:   cells,
	}
	b.typeCells()
	return b, nil
}

// typeCells assigns a kind to every cell that does not have one yet.
func (b *Board) typeCells() {
	b.cells.Each(func(r, c int, v Cell) {
		if v.Kind == 0 {
			_ = b.cells.Set(r, c, Cell{Kind: KindAt(r, c)})
		}
	})
}

// Resize changes the board size keeping the top-left region of the lattice.
func (b *Board) Resize(boxRows, boxCols int) error {
	if boxRows < 1 || boxCols < 1 {
		return fmt.Errorf("%w: %dx%d boxes", ErrInvalidDimension, boxRows, boxCols)
	}

	if err := b.cells.Resize(2*boxRows+1, 2*boxCols+1); err != nil {
		return err
	}

	b.BoxRows, b.BoxCols = boxRows, boxCols
	b.typeCells()
	return nil
}

func (b *Board) Rows() int { return b.cells.Rows() }

func (b *Board) Cols() int { return b.cells.Cols() }

func (b *Board) Cell(row, col int) (Cell, error) {
	return b.cells.Get(row, col)
}

func (b *Board) cell(row, col int) Cell {
	c, _ := b.cells.Get(row, col)
	return c
}

func (b *Board) TotalBoxes() int {
	return b.BoxRows * b.BoxCols
}

// Edges lists every edge in row-major lattice order.
func (b *Board) Edges() (edges []Edge) {
	b.cells.Each(func(r, c int, v Cell) {
		if v.Kind.IsEdge() {
			edges = append(edges, Edge{Row: r, Col: c})
		}
	})
	return
}

func (b *Board) FreeEdges() (freeEdges []Edge) {
	b.cells.Each(func(r, c int, v Cell) {
		if v.Kind.IsEdge() && !v.Claimed() {
			freeEdges = append(freeEdges, Edge{Row: r, Col: c})
		}
	})
	return
}

func (b *Board) Boxes() (boxes []Box) {
	b.cells.Each(func(r, c int, v Cell) {
		if v.Kind == KindBox {
			boxes = append(boxes, Box{Row: r, Col: c})
		}
	})
	return
}

// Check reports whether e addresses an edge cell of this board.
func (b *Board) Check(e Edge) error {
	c, err := b.cells.Get(e.Row, e.Col)
	if err != nil {
		return err
	}

	if !c.Kind.IsEdge() {
		return fmt.Errorf("%w: (%d, %d) is a %v", ErrNotAnEdge, e.Row, e.Col, c.Kind)
	}
	return nil
}

func (b *Board) Claimed(e Edge) bool {
	return b.cell(e.Row, e.Col).Claimed()
}

// NearBoxes returns the one or two boxes bordering e.
func (b *Board) NearBoxes(e Edge) (nearBoxes []Box) {
	for _, box := range e.NearBoxes() {
		if b.cells.Valid(box.Row, box.Col) {
			nearBoxes = append(nearBoxes, box)
		}
	}
	return
}

func (b *Board) EdgesCountInBox(box Box) (count int) {
	for _, e := range box.Edges() {
		if b.Claimed(e) {
			count++
		}
	}
	return
}

// ObtainsBoxes returns the boxes a claim on e would complete.
func (b *Board) ObtainsBoxes(e Edge) (obtainsBoxes []Box) {
	if b.Claimed(e) {
		return
	}

	for _, box := range b.NearBoxes(e) {
		if !b.cell(box.Row, box.Col).Claimed() && b.EdgesCountInBox(box) == 3 {
			obtainsBoxes = append(obtainsBoxes, box)
		}
	}
	return
}

// Claim sets the owner of e and of every box the claim completes.
func (b *Board) Claim(e Edge, p PlayerID) (completed []Box, err error) {
	if err = b.Check(e); err != nil {
		return nil, err
	}

	c := b.cell(e.Row, e.Col)
	if c.Claimed() {
		return nil, fmt.Errorf("%w: %v", ErrEdgeAlreadyClaimed, e)
	}

	c.Owner = p
	_ = b.cells.Set(e.Row, e.Col, c)

	for _, box := range b.NearBoxes(e) {
		bc := b.cell(box.Row, box.Col)
		if bc.Claimed() || b.EdgesCountInBox(box) != 4 {
			continue
		}

		bc.Owner = p
		_ = b.cells.Set(box.Row, box.Col, bc)
		completed = append(completed, box)
	}
	return completed, nil
}

func (b *Board) BoxOwner(box Box) PlayerID {
	return b.cell(box.Row, box.Col).Owner
}

func (b *Board) ClaimedBoxes() (count int) {
	for _, box := range b.Boxes() {
		if b.BoxOwner(box) != Nobody {
			count++
		}
	}
	return
}

func (b *Board) Full() bool {
	return len(b.FreeEdges()) == 0
}

// Owners copies every cell owner in row-major order.
func (b *Board) Owners() []PlayerID {
	owners := make([]PlayerID, 0, b.Rows()*b.Cols())
	b.cells.Each(func(_, _ int, v Cell) {
		owners = append(owners, v.Owner)
	})
	return owners
}

func (b *Board) SetOwners(owners []PlayerID) error {
	if len(owners) != b.Rows()*b.Cols() {
		return fmt.Errorf("%w: %d owners for %dx%d lattice", ErrInvalidDimension, len(owners), b.Rows(), b.Cols())
	}

	i := 0
	b.cells.Each(func(r, c int, v Cell) {
		v.Owner = owners[i]
		_ = b.cells.Set(r, c, v)
		i++
	})
	return nil
}

// Resolve converts any surface move form into a checked lattice edge.
func (b *Board) Resolve(m Move) (e Edge, err error) {
	switch m.Form {
	case FormLattice:
		e = Edge{Row: m.Row, Col: m.Col}
	case FormEndpoints:
		d1, d2 := NewDot(m.Line, m.From), NewDot(m.Line, m.To)
		if m.Orientation == Vertical {
			d1, d2 = NewDot(m.From, m.Line), NewDot(m.To, m.Line)
		}
		if abs(m.From-m.To) != 1 {
			return Edge{}, fmt.Errorf("%w: %d and %d", ErrNonAdjacentEndpoints, m.From, m.To)
		}
		if e, err = NewEdge(d1, d2); err != nil {
			return Edge{}, err
		}
	case FormBoxSide:
		if m.Row < 0 || m.Row >= b.BoxRows || m.Col < 0 || m.Col >= b.BoxCols {
			return Edge{}, fmt.Errorf("%w: box (%d, %d) in %dx%d boxes", ErrOutOfBounds, m.Row, m.Col, b.BoxRows, b.BoxCols)
		}
		e = NewBox(m.Row, m.Col).Edge(m.Side)
	default:
		return Edge{}, ErrMalformedMove
	}

	if err = b.Check(e); err != nil {
		return Edge{}, err
	}
	return e, nil
}

func (b *Board) Clone() *Board {
	return &Board{
		BoxRows: b.BoxRows,
		BoxCols: b.BoxCols,
		cells:   b.cells.Clone(),
	}
}
