// Package haulroute evaluates bulk-material transport options across a
// cost-annotated grid of regions and ranks them by multi-year financial
// outcome under price and demand uncertainty.
//
// 🚀 What is haulroute?
//
//	An in-memory batch evaluator that brings together:
//		• Terrain cost model: rail, electrified rail and road build costs per region
//		• Graph builder: 4-connected grid, topology or per-ton cost weights
//		• Routing: A* with an admissible Euclidean heuristic
//		• Finance: 5-year cash flow with fleet sizing, depreciation and NPV
//		• Scenarios: price × port × mode × risk, evaluated concurrently
//		• Exploration: price/demand sensitivity and seeded Monte Carlo
//
// Packages:
//
//	terrain/   Region and its derived per-region costs
//	transport/ closed set of modes, risk options, per-ton cost aggregation
//	gridgraph/ region grid with holes, immutable weighted graph snapshots
//	astar/     A* search over gridgraph.Graph
//	finance/   production schedule, mine opex tiers, projector
//	scenario/  single-case pipeline, EV accumulator, concurrent engine
//	explore/   sensitivity sweep, Monte Carlo
//	config/    YAML scenario files
//	report/    JSON and text reports
//
// Quick ASCII example:
//
//	O───A───N
//	│   │
//	D───M
//
//	an origin O, open regions A and D, a port N and a mountain M that
//	electric trucks never enter.
//
//	go install github.com/katalvlaran/haulroute/cmd/haulroute@latest
package haulroute
