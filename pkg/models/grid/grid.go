package grid

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension = errors.New("invalid grid dimension")
	ErrOutOfBounds      = errors.New("position out of bounds")
)

// Grid is a bounds-checked rectangular container addressed by (row, col).
// Cells are stored row-major.
type Grid[T any] struct {
	rows  int
	cols  int
	cells []T
}

func New[T any](rows, cols int) (*Grid[T], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}

	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}, nil
}

func (g *Grid[T]) Rows() int { return g.rows }

func (g *Grid[T]) Cols() int { return g.cols }

func (g *Grid[T]) Valid(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

func (g *Grid[T]) index(r, c int) int {
	return r*g.cols + c
}

func (g *Grid[T]) Get(r, c int) (v T, err error) {
	if !g.Valid(r, c) {
		return v, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, r, c, g.rows, g.cols)
	}
	return g.cells[g.index(r, c)], nil
}

func (g *Grid[T]) Set(r, c int, v T) error {
	if !g.Valid(r, c) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, r, c, g.rows, g.cols)
	}
	g.cells[g.index(r, c)] = v
	return nil
}

func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Each visits every cell in row-major order.
func (g *Grid[T]) Each(f func(r, c int, v T)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			f(r, c, g.cells[g.index(r, c)])
		}
	}
}

// Resize changes the extents, keeping the overlapping top-left region.
// Cells that did not exist before hold the zero value.
func (g *Grid[T]) Resize(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}

	cells := make([]T, rows*cols)
	keepRows, keepCols := min(rows, g.rows), min(cols, g.cols)
	for r := 0; r < keepRows; r++ {
		for c := 0; c < keepCols; c++ {
			cells[r*cols+c] = g.cells[g.index(r, c)]
		}
	}

	g.rows, g.cols, g.cells = rows, cols, cells
	return nil
}

func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}
