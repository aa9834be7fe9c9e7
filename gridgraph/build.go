package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/haulroute/terrain"
	"github.com/katalvlaran/haulroute/transport"
)

// BuildTopology returns a snapshot whose arc weights are the average of the
// endpoints' TraversalCost. Used when no financial objective is active.
// Complexity: O(W×H×4).
func BuildTopology(g *Grid) *Graph {
	return build(g, func(r *terrain.Region) float64 { return r.TraversalCost() }, nil)
}

// BuildCostPerTon returns a snapshot whose arc weights are the average of
// the endpoints' per-ton cost for p. Arcs into regions p.Mode cannot enter are
// omitted entirely.
//
// Returns ErrBadHorizon for a non-positive p.HorizonTons, and the transport
// errors for an invalid mode or conflicting risk option.
// Complexity: O(W×H×4).
func BuildCostPerTon(g *Grid, p CostParams) (*Graph, error) {
	if !p.Mode.Valid() {
		return nil, fmt.Errorf("%w: %d", transport.ErrUnknownMode, int(p.Mode))
	}
	if p.HorizonTons <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadHorizon, p.HorizonTons)
	}
	if err := p.Risk.Validate(); err != nil {
		return nil, err
	}

	cost := func(r *terrain.Region) float64 {
		return transport.RegionCostPerTon(r, p.Mode, p.Price, p.HorizonTons, p.Risk)
	}

	return build(g, cost, p.Mode.CanEnter), nil
}

// build walks every cell once, computing each endpoint cost a single time and
// emitting arcs to in-bounds, non-hole neighbors accepted by enter.
func build(g *Grid, cost func(*terrain.Region) float64, enter func(*terrain.Region) bool) *Graph {
	n := g.Len()
	costs := make([]float64, n)
	for idx := 0; idx < n; idx++ {
		if r := g.Region(idx); r != nil {
			costs[idx] = cost(r)
		}
	}

	gr := &Graph{
		grid:      g,
		adj:       make([][]Edge, n),
		minWeight: math.Inf(1),
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] == nil {
				continue
			}
			u := g.index(y, x)
			for _, d := range offsets4 {
				ny, nx := y+d[0], x+d[1]
				to := g.At(ny, nx)
				if to == nil {
					continue
				}
				if enter != nil && !enter(to) {
					continue
				}
				v := g.index(ny, nx)
				w := (costs[u] + costs[v]) / 2
				gr.adj[u] = append(gr.adj[u], Edge{From: u, To: v, Weight: w})
				gr.edges++
				if w < gr.minWeight {
					gr.minWeight = w
				}
			}
		}
	}
	if gr.edges == 0 {
		gr.minWeight = 0
	}

	return gr
}

// Grid returns the grid the snapshot was built from.
func (gr *Graph) Grid() *Grid {
	return gr.grid
}

// Len returns the number of vertex slots (cells, holes included).
func (gr *Graph) Len() int {
	return len(gr.adj)
}

// EdgeCount returns the number of directed arcs.
func (gr *Graph) EdgeCount() int {
	return gr.edges
}

// Neighbors returns the outgoing arcs of u. The slice is shared with the
// snapshot and must not be modified.
func (gr *Graph) Neighbors(u int) []Edge {
	if u < 0 || u >= len(gr.adj) {
		return nil
	}

	return gr.adj[u]
}

// Edges returns a copy of every arc in source-index order.
func (gr *Graph) Edges() []Edge {
	out := make([]Edge, 0, gr.edges)
	for _, es := range gr.adj {
		out = append(out, es...)
	}

	return out
}

// MinWeight returns the smallest arc weight, or 0 for an edgeless graph.
func (gr *Graph) MinWeight() float64 {
	return gr.minWeight
}

// Weight returns the weight of arc u→v and whether it exists.
func (gr *Graph) Weight(u, v int) (float64, bool) {
	for _, e := range gr.Neighbors(u) {
		if e.To == v {
			return e.Weight, true
		}
	}

	return 0, false
}
