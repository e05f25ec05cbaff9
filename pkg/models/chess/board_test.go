package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardTypesCellsByParity(t *testing.T) {
	b, err := NewBoard(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, b.Rows())
	assert.Equal(t, 7, b.Cols())

	for r, rows := 0, b.Rows(); r < rows; r++ {
		for c, cols := 0, b.Cols(); c < cols; c++ {
			cell, err := b.Cell(r, c)
			require.NoError(t, err)
			assert.Equal(t, KindAt(r, c), cell.Kind, "(%d, %d)", r, c)
			assert.Equal(t, Nobody, cell.Owner)
		}
	}

	assert.Len(t, b.Edges(), 2*4+3*3)
	assert.Len(t, b.Boxes(), 6)
	assert.Equal(t, 6, b.TotalBoxes())
}

func TestKindAt(t *testing.T) {
	assert.Equal(t, KindDot, KindAt(0, 0))
	assert.Equal(t, KindHEdge, KindAt(0, 1))
	assert.Equal(t, KindVEdge, KindAt(1, 0))
	assert.Equal(t, KindBox, KindAt(1, 1))
}

func TestNewBoardRejectsNonPositive(t *testing.T) {
	_, err := NewBoard(0, 3)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestClaimTwiceFails(t *testing.T) {
	b, err := NewBoard(2, 2)
	require.NoError(t, err)

	e := Edge{Row: 0, Col: 1}
	_, err = b.Claim(e, 1)
	require.NoError(t, err)
	_, err = b.Claim(e, 2)
	assert.ErrorIs(t, err, ErrEdgeAlreadyClaimed)

	cell, _ := b.Cell(0, 1)
	assert.Equal(t, PlayerID(1), cell.Owner)
}

func TestClaimRejectsNonEdges(t *testing.T) {
	b, err := NewBoard(2, 2)
	require.NoError(t, err)

	_, err = b.Claim(Edge{Row: 0, Col: 0}, 1)
	assert.ErrorIs(t, err, ErrNotAnEdge)
	_, err = b.Claim(Edge{Row: 1, Col: 1}, 1)
	assert.ErrorIs(t, err, ErrNotAnEdge)
	_, err = b.Claim(Edge{Row: 9, Col: 1}, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestClaimCompletesTwoBoxes(t *testing.T) {
	b, err := NewBoard(1, 2)
	require.NoError(t, err)

	shared := NewBox(0, 0).Edge(Right)
	for _, e := range b.Edges() {
		if e == shared {
			continue
		}
		completed, err := b.Claim(e, 1)
		require.NoError(t, err)
		assert.Empty(t, completed)
	}

	assert.Len(t, b.ObtainsBoxes(shared), 2)
	completed, err := b.Claim(shared, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Box{NewBox(0, 0), NewBox(0, 1)}, completed)
	assert.Equal(t, 2, b.ClaimedBoxes())
	assert.Equal(t, PlayerID(2), b.BoxOwner(NewBox(0, 1)))
	assert.True(t, b.Full())
}

func TestNearBoxesAtBoundary(t *testing.T) {
	b, err := NewBoard(2, 2)
	require.NoError(t, err)

	assert.Equal(t, []Box{{Row: 1, Col: 1}}, b.NearBoxes(Edge{Row: 0, Col: 1}))
	assert.Equal(t, []Box{{Row: 1, Col: 1}, {Row: 3, Col: 1}}, b.NearBoxes(Edge{Row: 2, Col: 1}))
	assert.Equal(t, []Box{{Row: 1, Col: 3}}, b.NearBoxes(Edge{Row: 1, Col: 4}))
}

func TestResolveForms(t *testing.T) {
	b, err := NewBoard(2, 2)
	require.NoError(t, err)

	cases := []struct {
		line string
		want Edge
	}{
		{"h 0 0 1", Edge{Row: 0, Col: 1}},
		{"h 2 2 1", Edge{Row: 4, Col: 3}},
		{"v 0 0 1", Edge{Row: 1, Col: 0}},
		{"V 2 1 2", Edge{Row: 3, Col: 4}},
		{"0 0 T", Edge{Row: 0, Col: 1}},
		{"1 1 r", Edge{Row: 3, Col: 4}},
		{"2 3", Edge{Row: 2, Col: 3}},
	}
	for _, tc := range cases {
		cmd, err := ParseCommand(tc.line)
		require.NoError(t, err, tc.line)
		require.Equal(t, CommandMove, cmd.Kind)
		e, err := b.Resolve(cmd.Move)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, e, tc.line)
	}
}

func TestResolveErrors(t *testing.T) {
	b, err := NewBoard(2, 2)
	require.NoError(t, err)

	cases := map[string]error{
		"h 0 0 2": ErrNonAdjacentEndpoints,
		"v 1 3 1": ErrNonAdjacentEndpoints,
		"h 3 0 1": ErrOutOfBounds,
		"h 0 2 3": ErrOutOfBounds,
		"2 0 T":   ErrOutOfBounds,
		"1 1":     ErrNotAnEdge,
		"0 0":     ErrNotAnEdge,
		"-1 1":    ErrOutOfBounds,
	}
	for line, want := range cases {
		cmd, err := ParseCommand(line)
		require.NoError(t, err, line)
		_, err = b.Resolve(cmd.Move)
		assert.ErrorIs(t, err, want, line)
	}
}

func TestEdgeCommandRoundTrip(t *testing.T) {
	b, err := NewBoard(3, 2)
	require.NoError(t, err)

	for _, e := range b.Edges() {
		cmd, err := ParseCommand(e.Command())
		require.NoError(t, err)
		got, err := b.Resolve(cmd.Move)
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
}

func TestResizeKeepsTopLeft(t *testing.T) {
	b, err := NewBoard(3, 3)
	require.NoError(t, err)
	_, err = b.Claim(Edge{Row: 0, Col: 1}, 1)
	require.NoError(t, err)
	_, err = b.Claim(Edge{Row: 6, Col: 5}, 2)
	require.NoError(t, err)

	require.NoError(t, b.Resize(2, 2))
	assert.Equal(t, 5, b.Rows())
	assert.True(t, b.Claimed(Edge{Row: 0, Col: 1}))
	assert.Len(t, b.FreeEdges(), 11)

	require.NoError(t, b.Resize(3, 3))
	assert.False(t, b.Claimed(Edge{Row: 6, Col: 5}))
	cell, err := b.Cell(6, 5)
	require.NoError(t, err)
	assert.Equal(t, KindHEdge, cell.Kind)

	assert.ErrorIs(t, b.Resize(0, 1), ErrInvalidDimension)
}

func TestOwnersRoundTrip(t *testing.T) {
	b, err := NewBoard(2, 2)
	require.NoError(t, err)
	before := b.Owners()

	_, err = b.Claim(Edge{Row: 0, Col: 1}, 1)
	require.NoError(t, err)
	require.NoError(t, b.SetOwners(before))
	assert.Equal(t, before, b.Owners())

	assert.ErrorIs(t, b.SetOwners(before[:3]), ErrInvalidDimension)
}

func TestCellToken(t *testing.T) {
	assert.Equal(t, "+", Cell{Kind: KindDot}.Token())
	assert.Equal(t, " ", Cell{Kind: KindHEdge}.Token())
	assert.Equal(t, "-", Cell{Kind: KindHEdge, Owner: 1}.Token())
	assert.Equal(t, "|", Cell{Kind: KindVEdge, Owner: 2}.Token())
	assert.Equal(t, "3", Cell{Kind: KindBox, Owner: 3}.Token())
	assert.Equal(t, " ", Cell{Kind: KindBox}.Token())
}
