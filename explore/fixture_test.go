package explore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haulroute/finance"
	"github.com/katalvlaran/haulroute/gridgraph"
	"github.com/katalvlaran/haulroute/scenario"
	"github.com/katalvlaran/haulroute/terrain"
	"github.com/katalvlaran/haulroute/transport"
)

// fixtureGrid:
//
//	O  A  Q(m)
//	D  W(m) E
//
// E is enclosed by mountains; A is open.
func fixtureGrid(t testing.TB) *gridgraph.Grid {
	t.Helper()
	cells := [][]*terrain.Region{
		{{Label: "O"}, {Label: "A"}, {Label: "Q", Mountain: true}},
		{{Label: "D"}, {Label: "W", Mountain: true}, {Label: "E"}},
	}
	g, err := gridgraph.NewGrid(cells)
	require.NoError(t, err)

	return g
}

func fixtureSchedule() finance.Schedule {
	return finance.Schedule{
		{Year: 2026, Tons: 250_000, ExpectedPrice: 4700},
		{Year: 2027, Tons: 2_000_000, ExpectedPrice: 4700},
		{Year: 2028, Tons: 4_000_000, ExpectedPrice: 4700},
		{Year: 2029, Tons: 4_000_000, ExpectedPrice: 4700},
		{Year: 2030, Tons: 8_000_000, ExpectedPrice: 4700},
	}
}

func fixturePrices() []scenario.PriceScenario {
	return []scenario.PriceScenario{
		{Price: 3500, Probability: 0.25},
		{Price: 4700, Probability: 0.5},
		{Price: 5900, Probability: 0.25},
	}
}

func fixturePipeline(t testing.TB) *scenario.Pipeline {
	t.Helper()
	g := fixtureGrid(t)
	origin, err := g.Lookup("O")
	require.NoError(t, err)
	p, err := scenario.NewPipeline(g, origin, fixtureSchedule(), finance.DefaultPolicy())
	require.NoError(t, err)

	return p
}

// reachableCase ships by diesel train to the open port A.
func reachableCase(t testing.TB, p *scenario.Pipeline) scenario.Case {
	t.Helper()
	a, err := p.Grid().Lookup("A")
	require.NoError(t, err)

	return scenario.Case{
		Mode: transport.DieselTrain,
		Port: scenario.Port{Name: "west", Region: a, UpgradeCost: 50},
		Risk: transport.RiskOption{Name: "none"},
	}
}

// walledCase sends electric trucks to the mountain-locked port E.
func walledCase(t testing.TB, p *scenario.Pipeline) scenario.Case {
	t.Helper()
	e, err := p.Grid().Lookup("E")
	require.NoError(t, err)

	return scenario.Case{
		Mode: transport.ElectricTruck,
		Port: scenario.Port{Name: "east", Region: e},
		Risk: transport.RiskOption{Name: "none"},
	}
}
