package scenario_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haulroute/finance"
	"github.com/katalvlaran/haulroute/gridgraph"
	"github.com/katalvlaran/haulroute/scenario"
	"github.com/katalvlaran/haulroute/terrain"
	"github.com/katalvlaran/haulroute/transport"
)

// fixtureMap is a small territory. Each cell is "<label>:<flags>" where flags
// use m=mountain, f=rainforest, u=urban, r=risky; "." is a hole.
//
// The eastern port E is walled in by mountains, so electric trucks cannot
// reach it.
var fixtureMap = []string{
	"O:   A:   B:f  C:   N:",
	"D:   F:m  G:m  H:   I:r",
	"J:   K:r  .    L:u  Q:m",
	"S:   T:   V:   W:m  E:",
}

func fixtureGrid(t testing.TB) *gridgraph.Grid {
	t.Helper()
	cells := make([][]*terrain.Region, len(fixtureMap))
	for y, row := range fixtureMap {
		for _, tok := range strings.Fields(row) {
			if tok == "." {
				cells[y] = append(cells[y], nil)
				continue
			}
			label, flags, _ := strings.Cut(tok, ":")
			r := &terrain.Region{
				Label:      label,
				Mountain:   strings.Contains(flags, "m"),
				Rainforest: strings.Contains(flags, "f"),
				Urban:      strings.Contains(flags, "u"),
				Risky:      strings.Contains(flags, "r"),
			}
			cells[y] = append(cells[y], r)
		}
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
		{Year: 2029, Tons: 6_000_000, ExpectedPrice: 4700},
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

func fixtureRisks() []transport.RiskOption {
	return []transport.RiskOption{
		{Name: "insurance", Insurance: true},
		{Name: "none"},
		{Name: "security", Security: true},
	}
}

func fixturePorts(t testing.TB, g *gridgraph.Grid) []scenario.Port {
	t.Helper()
	north, err := g.Lookup("N")
	require.NoError(t, err)
	east, err := g.Lookup("E")
	require.NoError(t, err)

	return []scenario.Port{
		{Name: "north", Region: north, UpgradeCost: 120},
		{Name: "east", Region: east, UpgradeCost: 60},
	}
}

func fixturePipeline(t testing.TB) *scenario.Pipeline {
	t.Helper()
	g := fixtureGrid(t)
	origin, err := g.Lookup("O")
	require.NoError(t, err)
	pol := finance.DefaultPolicy()
	pol.BaseYear = 2026
	p, err := scenario.NewPipeline(g, origin, fixtureSchedule(), pol)
	require.NoError(t, err)

	return p
}

func fixtureEngine(t testing.TB, opts ...scenario.Option) *scenario.Engine {
	t.Helper()
	p := fixturePipeline(t)

	return scenario.NewEngine(p, fixturePrices(), fixturePorts(t, p.Grid()), nil, fixtureRisks(), opts...)
}
