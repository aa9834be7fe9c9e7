// Package gridgraph treats a rectangular grid of regions as a graph and
// builds immutable weighted snapshots of it for path search.
//
// What:
//
//   - Grid wraps a [][]*terrain.Region; nil cells are holes.
//   - Four-connectivity only (N, E, S, W). Out-of-bounds and hole cells never
//     produce edges.
//   - BuildTopology weights each arc by the average traversal cost of its
//     endpoints.
//   - BuildCostPerTon weights each arc by the average per-ton cost of its
//     endpoints for a given mode, price, horizon and risk option.
//
// Why:
//
//   - Every scenario gets its own Graph. Nothing is patched in place, so
//     snapshots can be searched concurrently without locks.
//
// Mode constraints are structural: an arc into a region the mode cannot
// enter is omitted, never given an infinite weight.
//
// Connectivity:
//
//   - Reachable answers "can this mode get from origin to port at all" on a
//     snapshot without running a weighted search; config uses it to report
//     ports a mode can never reach.
//   - Components groups the snapshot's regions into islands, for callers
//     that need the whole partition rather than one pair.
//
// Complexity:
//
//   - NewGrid:          O(W×H), Memory: O(W×H).
//   - BuildTopology:    O(W×H×4), Memory: O(W×H×4).
//   - BuildCostPerTon:  O(W×H×4), Memory: O(W×H×4).
//   - Components:       O(W×H×4), Memory: O(W×H).
//   - Reachable:        O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDuplicateLabel: two regions share a label.
//   - ErrBadHorizon: non-positive tonnage horizon.
//   - ErrUnknownLabel: lookup of a label not in the grid.
package gridgraph
