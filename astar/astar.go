package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/haulroute/gridgraph"
)

// Search computes a minimum-weight path from start to goal in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be cell indices of g's grid (ErrVertexOutOfRange).
//  3. start and goal must not be holes (ErrHoleVertex).
//
// Returns ErrNoPath when goal is unreachable. When start == goal the path is
// the single cell with zero cost.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search(g *gridgraph.Graph, start, goal int, opts ...Option) (Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGraph
	}
	grid := g.Grid()
	n := g.Len()
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return Result{}, fmt.Errorf("%w: start=%d goal=%d cells=%d", ErrVertexOutOfRange, start, goal, n)
	}
	if grid.Region(start) == nil || grid.Region(goal) == nil {
		return Result{}, fmt.Errorf("%w: start=%d goal=%d", ErrHoleVertex, start, goal)
	}

	// 3) Resolve heuristic
	h := cfg.Heuristic
	if h == nil {
		scale := cfg.Scale
		if scale < 0 {
			scale = g.MinWeight()
		}
		h = func(gr *gridgraph.Grid, cell, goal int) float64 {
			return scale * Euclidean(gr, cell, goal)
		}
	}

	r := &runner{
		g:      g,
		goal:   goal,
		h:      h,
		gScore: make([]float64, n),
		prev:   make([]int, n),
		closed: make([]bool, n),
		pq:     make(nodePQ, 0, n),
	}
	r.init(start)

	return r.process(start)
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g      *gridgraph.Graph
	goal   int
	h      Heuristic
	gScore []float64 // best-known cost from start
	prev   []int     // predecessor on the best-known path, -1 if none
	closed []bool    // finalized cells
	pq     nodePQ
}

// init resets every cell to unvisited and pushes start.
func (r *runner) init(start int) {
	for i := range r.gScore {
		r.gScore[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.gScore[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, f: r.h(r.g.Grid(), start, r.goal)})
}

// process pops the lowest-f cell until goal is closed or the frontier empties.
func (r *runner) process(start int) (Result, error) {
	expanded := 0
	for r.pq.Len() > 0 {
		u := heap.Pop(&r.pq).(*nodeItem).id
		// stale duplicate
		if r.closed[u] {
			continue
		}
		r.closed[u] = true
		expanded++

		if u == r.goal {
			return Result{
				Path:     r.reconstruct(start),
				Cost:     r.gScore[u],
				Expanded: expanded,
			}, nil
		}
		r.relax(u)
	}

	return Result{}, fmt.Errorf("%w: %d→%d", ErrNoPath, start, r.goal)
}

// relax updates each open neighbor of u whose cost strictly improves and
// pushes a fresh heap entry for it.
func (r *runner) relax(u int) {
	grid := r.g.Grid()
	for _, e := range r.g.Neighbors(u) {
		v := e.To
		if r.closed[v] {
			continue
		}
		cand := r.gScore[u] + e.Weight
		if cand >= r.gScore[v] {
			continue
		}
		r.gScore[v] = cand
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, f: cand + r.h(grid, v, r.goal)})
	}
}

// reconstruct follows predecessors from goal back to start and reverses.
func (r *runner) reconstruct(start int) []int {
	var path []int
	for at := r.goal; at != -1; at = r.prev[at] {
		path = append(path, at)
		if at == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a frontier entry ordered by f = g + h.
type nodeItem struct {
	id int
	f  float64
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
