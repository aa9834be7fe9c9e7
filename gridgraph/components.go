package gridgraph

// Components finds the weakly connected groups of regions in the snapshot.
// Returns a slice of components; each component is a slice of row-major cell
// indices in BFS order. Holes belong to no component.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gr *Graph) Components() [][]int {
	n := gr.Len()
	// undirected view: an arc in either direction joins two cells
	undirected := make([][]int, n)
	for u, es := range gr.adj {
		for _, e := range es {
			undirected[u] = append(undirected[u], e.To)
			undirected[e.To] = append(undirected[e.To], u)
		}
	}

	seen := make([]bool, n)
	var comps [][]int
	for i0 := 0; i0 < n; i0++ {
		if seen[i0] || gr.grid.Region(i0) == nil {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range undirected[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Reachable reports whether goal can be reached from start following arc
// direction.
// Complexity: O(W·H·4).
func (gr *Graph) Reachable(start, goal int) bool {
	n := gr.Len()
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return false
	}
	if gr.grid.Region(start) == nil || gr.grid.Region(goal) == nil {
		return false
	}
	seen := make([]bool, n)
	seen[start] = true
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == goal {
			return true
		}
		for _, e := range gr.adj[u] {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return false
}
