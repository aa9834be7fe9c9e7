package astar_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/haulroute/gridgraph"
	"github.com/katalvlaran/haulroute/terrain"
)

// parseMap builds a Grid from rows of single-character cells:
// '.' hole, 'P' plain, 'M' mountain, 'F' rainforest, 'U' urban, 'R' risky.
func parseMap(rows ...string) *gridgraph.Grid {
	cells := make([][]*terrain.Region, len(rows))
	for y, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		cells[y] = make([]*terrain.Region, len(row))
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			r := terrain.New(y, x, fmt.Sprintf("r%dc%d", y, x))
			r.Mountain = ch == 'M'
			r.Rainforest = ch == 'F'
			r.Urban = ch == 'U'
			r.Risky = ch == 'R'
			cells[y][x] = r
		}
	}
	g, err := gridgraph.NewGrid(cells)
	if err != nil {
		panic(err)
	}

	return g
}

// randomGrid returns an h×w grid with random terrain and roughly 15% holes.
// The top-left cell is always a plain region.
func randomGrid(rng *rand.Rand, h, w int) *gridgraph.Grid {
	cells := make([][]*terrain.Region, h)
	for y := range cells {
		cells[y] = make([]*terrain.Region, w)
		for x := range cells[y] {
			if (y != 0 || x != 0) && rng.Float64() < 0.15 {
				continue
			}
			r := terrain.New(y, x, fmt.Sprintf("r%dc%d", y, x))
			if y != 0 || x != 0 {
				r.Mountain = rng.Float64() < 0.3
				r.Rainforest = rng.Float64() < 0.3
				r.Urban = rng.Float64() < 0.2
				r.Risky = rng.Float64() < 0.3
			}
			cells[y][x] = r
		}
	}
	g, err := gridgraph.NewGrid(cells)
	if err != nil {
		panic(err)
	}

	return g
}

// exhaustiveMin enumerates every simple path from start to goal and returns
// the minimum total weight, or +Inf when none exists.
func exhaustiveMin(gr *gridgraph.Graph, start, goal int) float64 {
	best := math.Inf(1)
	onPath := make([]bool, gr.Len())
	var walk func(u int, cost float64)
	walk = func(u int, cost float64) {
		if cost >= best {
			return
		}
		if u == goal {
			best = cost
			return
		}
		onPath[u] = true
		for _, e := range gr.Neighbors(u) {
			if !onPath[e.To] {
				walk(e.To, cost+e.Weight)
			}
		}
		onPath[u] = false
	}
	walk(start, 0)

	return best
}

// pathCost sums arc weights along path.
func pathCost(gr *gridgraph.Graph, path []int) (float64, bool) {
	var sum float64
	for i := 1; i < len(path); i++ {
		w, ok := gr.Weight(path[i-1], path[i])
		if !ok {
			return 0, false
		}
		sum += w
	}

	return sum, true
}
