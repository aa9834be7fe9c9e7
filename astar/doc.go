// Package astar provides A* shortest-path search over gridgraph snapshots.
//
// Overview:
//
//   - Search finds a minimum-weight path between two cells of a
//     *gridgraph.Graph, guided by a Euclidean heuristic in grid coordinates.
//   - It relies on a min-heap keyed on f = g + h to always expand the most
//     promising cell next.
//   - Duplicate heap entries for the same cell are tolerated (lazy
//     decrease-key): once a cell is closed, stale entries are skipped.
//
// Heuristic:
//
//   - Default: Euclidean distance × scale, where scale is the snapshot's
//     MinWeight(). Each 4-connected step covers a Euclidean distance of 1 and
//     costs at least MinWeight(), so the estimate never exceeds the true
//     remaining cost and is consistent. This holds for topology and
//     cost-per-ton snapshots alike.
//   - WithHeuristicScale overrides the scale. Scales above MinWeight() may
//     return suboptimal paths.
//   - WithZeroHeuristic turns the search into Dijkstra.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) worst case, usually far less with a good heuristic.
//   - Space: O(V + E) for per-cell state and heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:          nil snapshot.
//   - ErrVertexOutOfRange:  start or goal outside the grid.
//   - ErrHoleVertex:        start or goal is a hole.
//   - ErrNoPath:            the frontier emptied before reaching goal.
//   - ErrBadHeuristicScale: negative or NaN scale (panics in WithHeuristicScale).
//
// Thread safety:
//
//   - Search keeps all state local to the call; snapshots are immutable, so
//     concurrent searches over the same snapshot are safe.
package astar
