package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/haulroute/terrain"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// Region pointers are copied by value so later edits to the input do not
// leak into the grid. Row and Col of each copy are set from its position.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrDuplicateLabel when two
// regions share a non-empty label.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(cells [][]*terrain.Region) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		Width:   w,
		Height:  h,
		cells:   make([][]*terrain.Region, h),
		byLabel: make(map[string]int, w*h),
	}
	for y := 0; y < h; y++ {
		g.cells[y] = make([]*terrain.Region, w)
		for x := 0; x < w; x++ {
			src := cells[y][x]
			if src == nil {
				continue
			}
			r := *src
			r.Row, r.Col = y, x
			g.cells[y][x] = &r
			if r.Label == "" {
				continue
			}
			if _, dup := g.byLabel[r.Label]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, r.Label)
			}
			g.byLabel[r.Label] = g.index(y, x)
		}
	}

	return g, nil
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Len returns the number of cells, holes included.
func (g *Grid) Len() int {
	return g.Width * g.Height
}

// At returns the region at (row, col), or nil for a hole or out of bounds.
func (g *Grid) At(row, col int) *terrain.Region {
	if !g.InBounds(row, col) {
		return nil
	}

	return g.cells[row][col]
}

// Region returns the region at row-major index idx, or nil.
func (g *Grid) Region(idx int) *terrain.Region {
	if idx < 0 || idx >= g.Len() {
		return nil
	}
	row, col := g.Coordinate(idx)

	return g.cells[row][col]
}

// Lookup returns the row-major index of the region labelled label.
func (g *Grid) Lookup(label string) (int, error) {
	idx, ok := g.byLabel[label]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}

	return idx, nil
}

// Regions returns every non-hole region in row-major order.
func (g *Grid) Regions() []*terrain.Region {
	out := make([]*terrain.Region, 0, g.Len())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if r := g.cells[y][x]; r != nil {
				out = append(out, r)
			}
		}
	}

	return out
}

// Path maps row-major indices to regions.
func (g *Grid) Path(indices []int) []*terrain.Region {
	out := make([]*terrain.Region, len(indices))
	for i, idx := range indices {
		out[i] = g.Region(idx)
	}

	return out
}

// Index maps (row, col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return g.index(row, col)
}

func (g *Grid) index(row, col int) int {
	return row*g.Width + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Width, idx % g.Width
}
