package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositive(t *testing.T) {
	for _, dim := range [][2]int{{0, 1}, {1, 0}, {-3, 4}, {0, 0}} {
		_, err := New[int](dim[0], dim[1])
		assert.ErrorIs(t, err, ErrInvalidDimension, "dim %v", dim)
	}
}

func TestGetSetBounds(t *testing.T) {
	g, err := New[int](2, 3)
	require.NoError(t, err)

	require.NoError(t, g.Set(1, 2, 7))
	v, err := g.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		assert.ErrorIs(t, g.Set(p[0], p[1], 1), ErrOutOfBounds)
		_, err := g.Get(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
}

func TestFillAndEach(t *testing.T) {
	g, err := New[string](2, 2)
	require.NoError(t, err)
	g.Fill("x")

	var order [][2]int
	g.Each(func(r, c int, v string) {
		assert.Equal(t, "x", v)
		order = append(order, [2]int{r, c})
	})
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, order)
}

func TestResizeShrinkKeepsTopLeft(t *testing.T) {
	g, err := New[int](3, 3)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.NoError(t, g.Set(r, c, r*10+c))
		}
	}

	require.NoError(t, g.Resize(2, 2))
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			v, err := g.Get(r, c)
			require.NoError(t, err)
			assert.Equal(t, r*10+c, v)
		}
	}
	_, err = g.Get(2, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestResizeGrowLeavesNewCellsEmpty(t *testing.T) {
	g, err := New[int](1, 2)
	require.NoError(t, err)
	g.Fill(5)

	require.NoError(t, g.Resize(2, 3))
	v, _ := g.Get(0, 1)
	assert.Equal(t, 5, v)
	v, _ = g.Get(0, 2)
	assert.Zero(t, v)
	v, _ = g.Get(1, 0)
	assert.Zero(t, v)

	assert.ErrorIs(t, g.Resize(0, 2), ErrInvalidDimension)
	assert.Equal(t, 2, g.Rows())
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := New[int](2, 2)
	require.NoError(t, err)
	c := g.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, _ := g.Get(0, 0)
	assert.Zero(t, v)
}
