package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/haulroute/astar"
	"github.com/katalvlaran/haulroute/finance"
	"github.com/katalvlaran/haulroute/gridgraph"
	"github.com/katalvlaran/haulroute/terrain"
	"github.com/katalvlaran/haulroute/transport"
)

// Pipeline evaluates single cases against a fixed grid, origin, schedule and
// policy. It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	grid     *gridgraph.Grid
	origin   int
	schedule finance.Schedule
	policy   finance.Policy
}

// NewPipeline validates its inputs and returns a Pipeline. The schedule is
// copied. A schedule whose total tonnage is zero yields ErrEmptyHorizon.
func NewPipeline(grid *gridgraph.Grid, origin int, schedule finance.Schedule, policy finance.Policy) (*Pipeline, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if grid.Region(origin) == nil {
		return nil, fmt.Errorf("%w: index %d", ErrBadOrigin, origin)
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	if schedule.HorizonTons() <= 0 {
		return nil, ErrEmptyHorizon
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return &Pipeline{grid: grid, origin: origin, schedule: schedule.Clone(), policy: policy}, nil
}

// Grid returns the pipeline's grid.
func (p *Pipeline) Grid() *gridgraph.Grid { return p.grid }

// Origin returns the origin cell index.
func (p *Pipeline) Origin() int { return p.origin }

// Schedule returns a copy of the base schedule.
func (p *Pipeline) Schedule() finance.Schedule { return p.schedule.Clone() }

// Evaluate runs c against the base schedule.
func (p *Pipeline) Evaluate(ctx context.Context, c Case) (Outcome, error) {
	return p.EvaluateWith(ctx, c, p.schedule)
}

// EvaluateWith runs c against schedule s, with every year priced at c.Price.
// s is not modified. Returns ErrUnreachable when no route exists and
// ErrEmptyHorizon when s ships nothing.
func (p *Pipeline) EvaluateWith(ctx context.Context, c Case, s finance.Schedule) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if p.grid.Region(c.Port.Region) == nil {
		return Outcome{}, fmt.Errorf("%w: %q at index %d", ErrBadPort, c.Port.Name, c.Port.Region)
	}

	sched := s.WithPrice(c.Price)
	horizon := sched.HorizonTons()
	if horizon <= 0 {
		return Outcome{Case: c}, fmt.Errorf("%w: %s", ErrEmptyHorizon, c.Key())
	}

	// 1) Fresh snapshot for this case
	gr, err := gridgraph.BuildCostPerTon(p.grid, gridgraph.CostParams{
		Mode:        c.Mode,
		Price:       c.Price,
		HorizonTons: horizon,
		Risk:        c.Risk,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("scenario: build %s: %w", c.Key(), err)
	}

	// 2) Route
	res, err := astar.Search(gr, p.origin, c.Port.Region)
	if errors.Is(err, astar.ErrNoPath) {
		return Outcome{Case: c}, fmt.Errorf("%w: %s", ErrUnreachable, c.Key())
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("scenario: search %s: %w", c.Key(), err)
	}
	route := p.grid.Path(res.Path)

	// 3) Per-ton cost plus amortized port upgrade
	b, err := transport.PerTonCost(route, c.Mode, c.Price, horizon, c.Risk)
	if err != nil {
		return Outcome{}, fmt.Errorf("scenario: cost %s: %w", c.Key(), err)
	}
	portPerTon := c.Port.UpgradeCost * terrain.UnitScale / horizon
	infra := transport.InfrastructureCapital(route, c.Mode)

	// 4) Projection
	pol := p.policy
	pol.Insurance = c.Risk.Insurance
	spec := c.Mode.Spec()
	proj, err := finance.Project(finance.Input{
		TransportCostPerTon:   b.Total + portPerTon,
		Schedule:              sched,
		FleetUnitCost:         spec.FleetUnitCost,
		FleetUnitCapacity:     spec.FleetUnitCapacity,
		InfrastructureCapital: infra,
		Policy:                pol,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("scenario: project %s: %w", c.Key(), err)
	}

	labels := make([]string, len(route))
	for i, r := range route {
		labels[i] = r.Label
	}

	return Outcome{
		Case:                  c,
		Route:                 route,
		Labels:                labels,
		RouteCost:             res.Cost,
		PerTon:                b,
		PortPerTon:            portPerTon,
		CostPerTon:            b.Total + portPerTon,
		InfrastructureCapital: infra,
		Projection:            proj,
	}, nil
}
