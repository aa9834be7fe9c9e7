package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haulroute/gridgraph"
	"github.com/katalvlaran/haulroute/terrain"
)

//----------------------------------------------------------------------------//
// NewGrid and lookup Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or
// ambiguous inputs.
func TestNewGrid_Errors(t *testing.T) {
	a := terrain.New(0, 0, "A")
	cases := []struct {
		name  string
		cells [][]*terrain.Region
		err   error
	}{
		{"EmptyRows", [][]*terrain.Region{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]*terrain.Region{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]*terrain.Region{{a, nil}, {nil}}, gridgraph.ErrNonRectangular},
		{"DuplicateLabel", [][]*terrain.Region{{a, terrain.New(0, 1, "A")}}, gridgraph.ErrDuplicateLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNewGrid_CopiesRegions ensures later edits to the input are not seen.
func TestNewGrid_CopiesRegions(t *testing.T) {
	src := terrain.New(9, 9, "A")
	g, err := gridgraph.NewGrid([][]*terrain.Region{{src}})
	require.NoError(t, err)

	src.Mountain = true
	got := g.At(0, 0)
	require.NotNil(t, got)
	assert.False(t, got.Mountain)
	assert.Equal(t, 0, got.Row, "row is taken from grid position")
	assert.Equal(t, 0, got.Col)
}

func TestGrid_LookupAndCoordinates(t *testing.T) {
	g := parseMap(
		"P P .",
		"P M P",
	)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Len(t, g.Regions(), 5)

	idx, err := g.Lookup("r1c1")
	require.NoError(t, err)
	assert.Equal(t, 4, idx)
	row, col := g.Coordinate(idx)
	assert.Equal(t, [2]int{1, 1}, [2]int{row, col})
	assert.Equal(t, idx, g.Index(row, col))
	assert.True(t, g.Region(idx).Mountain)

	assert.Nil(t, g.At(0, 2), "hole")
	assert.Nil(t, g.At(-1, 0), "out of bounds")
	assert.Nil(t, g.Region(99))

	_, err = g.Lookup("nope")
	assert.ErrorIs(t, err, gridgraph.ErrUnknownLabel)
}
