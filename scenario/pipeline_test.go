package scenario_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haulroute/astar"
	"github.com/katalvlaran/haulroute/finance"
	"github.com/katalvlaran/haulroute/gridgraph"
	"github.com/katalvlaran/haulroute/scenario"
	"github.com/katalvlaran/haulroute/terrain"
	"github.com/katalvlaran/haulroute/transport"
)

// TestPipeline_SingleMountainRegion checks the reference figure: a one-cell
// route through a mountain by diesel train costs 400M/20.25M + 50 per ton.
func TestPipeline_SingleMountainRegion(t *testing.T) {
	g, err := gridgraph.NewGrid([][]*terrain.Region{{{Label: "M", Mountain: true}}})
	require.NoError(t, err)
	p, err := scenario.NewPipeline(g, 0, fixtureSchedule(), finance.DefaultPolicy())
	require.NoError(t, err)

	out, err := p.Evaluate(context.Background(), scenario.Case{
		Mode:  transport.DieselTrain,
		Port:  scenario.Port{Name: "here", Region: 0},
		Risk:  transport.RiskOption{Name: "none"},
		Price: 4700, Probability: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"M"}, out.Labels)
	assert.InDelta(t, 69.75, out.CostPerTon, 0.01)
	assert.Zero(t, out.PortPerTon)
	assert.Equal(t, 400e6, out.InfrastructureCapital)
	assert.Len(t, out.Projection.Years, 5)
}

func TestPipeline_PortUpgradeAmortized(t *testing.T) {
	p := fixturePipeline(t)
	ports := fixturePorts(t, p.Grid())

	out, err := p.Evaluate(context.Background(), scenario.Case{
		Mode: transport.DieselTrain, Port: ports[0], Risk: transport.RiskOption{Name: "none"}, Price: 4700,
	})
	require.NoError(t, err)
	assert.InDelta(t, 120e6/20_250_000, out.PortPerTon, 1e-9)
	assert.InDelta(t, out.PerTon.Total+out.PortPerTon, out.CostPerTon, 1e-9)
	assert.Equal(t, "O", out.Labels[0])
	assert.Equal(t, "N", out.Labels[len(out.Labels)-1])
	for _, y := range out.Projection.Years {
		assert.Equal(t, 4700.0, y.Price)
	}
}

func TestPipeline_InsuranceSetsPolicy(t *testing.T) {
	p := fixturePipeline(t)
	port := fixturePorts(t, p.Grid())[0]

	out, err := p.Evaluate(context.Background(), scenario.Case{
		Mode: transport.DieselTruck, Port: port, Risk: transport.RiskOption{Name: "ins", Insurance: true}, Price: 4000,
	})
	require.NoError(t, err)
	assert.Zero(t, out.PerTon.Risk)
	assert.InDelta(t, 0.01*out.Projection.Years[0].Revenue, out.Projection.Years[0].Insurance, 1e-6)
}

func TestPipeline_ElectricTruckUnreachable(t *testing.T) {
	p := fixturePipeline(t)
	east := fixturePorts(t, p.Grid())[1]

	_, err := p.Evaluate(context.Background(), scenario.Case{
		Mode: transport.ElectricTruck, Port: east, Risk: transport.RiskOption{Name: "none"}, Price: 4700,
	})
	assert.ErrorIs(t, err, scenario.ErrUnreachable)
	assert.True(t, errors.Is(err, astar.ErrNoPath))

	out, err := p.Evaluate(context.Background(), scenario.Case{
		Mode: transport.DieselTruck, Port: east, Risk: transport.RiskOption{Name: "none"}, Price: 4700,
	})
	require.NoError(t, err)
	assert.Equal(t, "E", out.Labels[len(out.Labels)-1])
}

// TestPipeline_EvaluateWithLeavesScheduleAlone ensures overrides do not
// touch the caller's schedule.
func TestPipeline_EvaluateWithLeavesScheduleAlone(t *testing.T) {
	p := fixturePipeline(t)
	port := fixturePorts(t, p.Grid())[0]
	s := fixtureSchedule()
	_, err := p.EvaluateWith(context.Background(), scenario.Case{
		Mode: transport.DieselTrain, Port: port, Risk: transport.RiskOption{Name: "none"}, Price: 9999,
	}, s.WithFirstYearTons(1))
	require.NoError(t, err)
	assert.Equal(t, fixtureSchedule(), s)
	assert.Equal(t, fixtureSchedule(), p.Schedule())
}

func TestPipeline_Errors(t *testing.T) {
	g := fixtureGrid(t)
	_, err := scenario.NewPipeline(nil, 0, fixtureSchedule(), finance.DefaultPolicy())
	assert.ErrorIs(t, err, scenario.ErrNilGrid)

	hole := g.Index(2, 2)
	_, err = scenario.NewPipeline(g, hole, fixtureSchedule(), finance.DefaultPolicy())
	assert.ErrorIs(t, err, scenario.ErrBadOrigin)

	_, err = scenario.NewPipeline(g, 0, nil, finance.DefaultPolicy())
	assert.ErrorIs(t, err, finance.ErrEmptySchedule)

	idle := finance.Schedule{{Year: 2026, Tons: 0, ExpectedPrice: 4700}, {Year: 2027, Tons: 0, ExpectedPrice: 4700}}
	_, err = scenario.NewPipeline(g, 0, idle, finance.DefaultPolicy())
	assert.ErrorIs(t, err, scenario.ErrEmptyHorizon)

	p := fixturePipeline(t)
	_, err = p.Evaluate(context.Background(), scenario.Case{Port: scenario.Port{Region: hole}})
	assert.ErrorIs(t, err, scenario.ErrBadPort)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Evaluate(ctx, scenario.Case{})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPipeline_EvaluateWithEmptyHorizon checks an override that ships nothing
// is reported as ErrEmptyHorizon rather than a graph build failure.
func TestPipeline_EvaluateWithEmptyHorizon(t *testing.T) {
	p := fixturePipeline(t)
	port := fixturePorts(t, p.Grid())[0]
	idle := finance.Schedule{{Year: 2026, Tons: 0, ExpectedPrice: 4700}}

	_, err := p.EvaluateWith(context.Background(), scenario.Case{
		Mode: transport.DieselTrain, Port: port, Risk: transport.RiskOption{Name: "none"}, Price: 4700,
	}, idle)
	assert.ErrorIs(t, err, scenario.ErrEmptyHorizon)
	assert.NotErrorIs(t, err, gridgraph.ErrBadHorizon)
}
