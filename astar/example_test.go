// Package astar_test provides examples demonstrating how to use Search.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/haulroute/astar"
	"github.com/katalvlaran/haulroute/gridgraph"
)

// ExampleSearch finds the cheapest topology route around a rainforest.
//
//	P F P
//	P P P
func ExampleSearch() {
	g := parseMap(
		"P F P",
		"P P P",
	)
	gr := gridgraph.BuildTopology(g)

	res, err := astar.Search(gr, g.Index(0, 0), g.Index(0, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, idx := range res.Path {
		fmt.Print(g.Region(idx).Label, " ")
	}
	fmt.Printf("\ncost=%.1f\n", res.Cost)
	// Output:
	// r0c0 r1c0 r1c1 r1c2 r0c2
	// cost=12.0
}
