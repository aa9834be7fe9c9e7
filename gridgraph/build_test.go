package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haulroute/gridgraph"
	"github.com/katalvlaran/haulroute/transport"
)

const horizon = 20_250_000.0

// TestBuildTopology_EdgesAndWeights checks 4-connectivity, holes and the
// average-of-endpoints weight.
//
//	P F .
//	M P P
func TestBuildTopology_EdgesAndWeights(t *testing.T) {
	g := parseMap(
		"P F .",
		"M P P",
	)
	gr := gridgraph.BuildTopology(g)

	// undirected adjacencies: (0,0)-(0,1) (0,0)-(1,0) (0,1)-(1,1) (1,0)-(1,1) (1,1)-(1,2)
	assert.Equal(t, 10, gr.EdgeCount())
	assert.Equal(t, 6, gr.Len())

	w, ok := gr.Weight(g.Index(0, 0), g.Index(0, 1))
	require.True(t, ok)
	assert.Equal(t, (3.0+11.0)/2, w)

	w, ok = gr.Weight(g.Index(1, 0), g.Index(1, 1))
	require.True(t, ok)
	assert.Equal(t, (6.0+3.0)/2, w)

	_, ok = gr.Weight(g.Index(0, 1), g.Index(0, 2))
	assert.False(t, ok, "hole has no adjacency")
	_, ok = gr.Weight(g.Index(0, 0), g.Index(1, 1))
	assert.False(t, ok, "no diagonals")

	assert.Equal(t, 3.0, gr.MinWeight())
	assert.Empty(t, gr.Neighbors(g.Index(0, 2)))
	assert.Nil(t, gr.Neighbors(-1))
}

func TestBuildCostPerTon_Weights(t *testing.T) {
	g := parseMap("P X")
	p := gridgraph.CostParams{
		Mode:        transport.DieselTrain,
		Price:       4700,
		HorizonTons: horizon,
		Risk:        transport.RiskOption{Name: "none"},
	}
	gr, err := gridgraph.BuildCostPerTon(g, p)
	require.NoError(t, err)

	plain := 50.0
	mountain := 400e6/horizon + 50 + 0.03*4700
	w, ok := gr.Weight(0, 1)
	require.True(t, ok)
	assert.InDelta(t, (plain+mountain)/2, w, 1e-9)

	p.Risk = transport.RiskOption{Name: "insurance", Insurance: true}
	gr, err = gridgraph.BuildCostPerTon(g, p)
	require.NoError(t, err)
	w, _ = gr.Weight(1, 0)
	assert.InDelta(t, (plain+400e6/horizon+50)/2, w, 1e-9)

	p.Risk = transport.RiskOption{Name: "security", Security: true}
	gr, err = gridgraph.BuildCostPerTon(g, p)
	require.NoError(t, err)
	w, _ = gr.Weight(1, 0)
	assert.InDelta(t, (plain+400e6/horizon+50+7.5)/2, w, 1e-9)
}

// TestBuildCostPerTon_ElectricTruckAvoidsMountains checks that arcs into a
// mountain are absent, while arcs out of it remain.
func TestBuildCostPerTon_ElectricTruckAvoidsMountains(t *testing.T) {
	g := parseMap("P M P")
	p := gridgraph.CostParams{Mode: transport.ElectricTruck, Price: 4700, HorizonTons: horizon}
	gr, err := gridgraph.BuildCostPerTon(g, p)
	require.NoError(t, err)

	_, ok := gr.Weight(0, 1)
	assert.False(t, ok)
	_, ok = gr.Weight(2, 1)
	assert.False(t, ok)
	_, ok = gr.Weight(1, 0)
	assert.True(t, ok, "leaving a mountain is allowed")
	assert.False(t, gr.Reachable(0, 2))
	assert.True(t, gr.Reachable(1, 2))

	p.Mode = transport.DieselTruck
	gr, err = gridgraph.BuildCostPerTon(g, p)
	require.NoError(t, err)
	assert.True(t, gr.Reachable(0, 2))
}

func TestBuildCostPerTon_Errors(t *testing.T) {
	g := parseMap("P")
	_, err := gridgraph.BuildCostPerTon(g, gridgraph.CostParams{Mode: transport.DieselTrain})
	assert.ErrorIs(t, err, gridgraph.ErrBadHorizon)

	_, err = gridgraph.BuildCostPerTon(g, gridgraph.CostParams{Mode: transport.Mode(7), HorizonTons: 1})
	assert.ErrorIs(t, err, transport.ErrUnknownMode)

	_, err = gridgraph.BuildCostPerTon(g, gridgraph.CostParams{
		Mode: transport.DieselTrain, HorizonTons: 1,
		Risk: transport.RiskOption{Insurance: true, Security: true},
	})
	assert.ErrorIs(t, err, transport.ErrConflictingRisk)
}

// TestBuild_SnapshotsAreIndependent rebuilds twice and checks the first
// snapshot is untouched.
func TestBuild_SnapshotsAreIndependent(t *testing.T) {
	g := parseMap("P R")
	a, err := gridgraph.BuildCostPerTon(g, gridgraph.CostParams{Mode: transport.DieselTrain, Price: 1000, HorizonTons: horizon})
	require.NoError(t, err)
	before := a.Edges()

	_, err = gridgraph.BuildCostPerTon(g, gridgraph.CostParams{Mode: transport.DieselTrain, Price: 9000, HorizonTons: horizon})
	require.NoError(t, err)
	assert.Equal(t, before, a.Edges())
	assert.Same(t, g, a.Grid())
}

func TestBuild_EdgelessGraph(t *testing.T) {
	gr := gridgraph.BuildTopology(parseMap("P . P"))
	assert.Zero(t, gr.EdgeCount())
	assert.Zero(t, gr.MinWeight())
}
