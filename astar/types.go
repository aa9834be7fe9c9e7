package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/haulroute/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *gridgraph.Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrVertexOutOfRange indicates start or goal is not a cell index of the grid.
	ErrVertexOutOfRange = errors.New("astar: vertex index out of range")

	// ErrHoleVertex indicates start or goal refers to a hole.
	ErrHoleVertex = errors.New("astar: vertex is a hole")

	// ErrNoPath indicates the goal is unreachable from start.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrBadHeuristicScale indicates a negative or NaN heuristic scale.
	ErrBadHeuristicScale = errors.New("astar: heuristic scale must be a non-negative number")
)

// Heuristic estimates the remaining cost from cell to goal.
type Heuristic func(g *gridgraph.Grid, cell, goal int) float64

// Result is the outcome of a successful search.
type Result struct {
	// Path lists cell indices from start to goal inclusive.
	Path []int
	// Cost is the sum of arc weights along Path.
	Cost float64
	// Expanded counts cells closed during the search.
	Expanded int
}

// Options configures Search.
//
//   - Heuristic replaces the Euclidean estimate entirely when non-nil.
//   - Scale multiplies the Euclidean estimate; negative means the
//     snapshot's MinWeight().
type Options struct {
	Heuristic Heuristic
	Scale     float64
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristicScale sets the multiplier applied to the Euclidean distance.
// Panics with ErrBadHeuristicScale on negative or NaN input.
func WithHeuristicScale(scale float64) Option {
	return func(o *Options) {
		if scale < 0 || math.IsNaN(scale) {
			panic(ErrBadHeuristicScale.Error())
		}
		o.Scale = scale
	}
}

// WithHeuristic installs a custom heuristic. Admissibility is the caller's
// responsibility.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithZeroHeuristic makes Search behave as Dijkstra.
func WithZeroHeuristic() Option {
	return WithHeuristicScale(0)
}

// DefaultOptions returns the defaults: Euclidean heuristic scaled by the
// snapshot's MinWeight().
func DefaultOptions() Options {
	return Options{Scale: -1}
}

// Euclidean returns the straight-line distance between two cells in grid
// coordinates.
func Euclidean(g *gridgraph.Grid, cell, goal int) float64 {
	r1, c1 := g.Coordinate(cell)
	r2, c2 := g.Coordinate(goal)

	return math.Hypot(float64(r1-r2), float64(c1-c2))
}
