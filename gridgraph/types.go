// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/haulroute.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/haulroute/terrain"
	"github.com/katalvlaran/haulroute/transport"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDuplicateLabel indicates two regions carry the same label.
	ErrDuplicateLabel = errors.New("gridgraph: duplicate region label")
	// ErrUnknownLabel indicates a label lookup failed.
	ErrUnknownLabel = errors.New("gridgraph: unknown region label")
	// ErrBadHorizon indicates a non-positive tonnage horizon.
	ErrBadHorizon = errors.New("gridgraph: horizon tonnage must be positive")
)

// offsets4 lists N, E, S, W as (dRow, dCol).
var offsets4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an immutable rectangular arrangement of regions.
// cells[row][col] is nil for a hole.
type Grid struct {
	Width, Height int
	cells         [][]*terrain.Region
	byLabel       map[string]int
}

// Edge is a directed arc between two row-major cell indices.
type Edge struct {
	From, To int
	Weight   float64
}

// Graph is a weighted snapshot over a Grid. It is never mutated after
// construction.
type Graph struct {
	grid      *Grid
	adj       [][]Edge
	edges     int
	minWeight float64
}

// CostParams selects the cost-per-ton weighting.
type CostParams struct {
	Mode        transport.Mode
	Price       float64
	HorizonTons float64
	Risk        transport.RiskOption
}
