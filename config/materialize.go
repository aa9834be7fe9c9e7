package config

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/haulroute/finance"
	"github.com/katalvlaran/haulroute/gridgraph"
	"github.com/katalvlaran/haulroute/scenario"
	"github.com/katalvlaran/haulroute/terrain"
	"github.com/katalvlaran/haulroute/transport"
)

// Scenario is a validated configuration resolved to domain values.
type Scenario struct {
	Grid     *gridgraph.Grid
	Origin   int
	Ports    []scenario.Port
	Prices   []scenario.PriceScenario
	Risks    []transport.RiskOption
	Modes    []transport.Mode
	Schedule finance.Schedule
	Policy   finance.Policy
	Analysis Analysis
}

// Materialize validates c and resolves labels to grid indices.
func (c *Config) Materialize() (*Scenario, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	grid, err := c.grid()
	if err != nil {
		return nil, err
	}
	origin, err := grid.Lookup(c.Origin)
	if err != nil {
		return nil, err
	}
	ports := make([]scenario.Port, len(c.Ports))
	for i, p := range c.Ports {
		idx, err := grid.Lookup(p.Region)
		if err != nil {
			return nil, err
		}
		ports[i] = scenario.Port{Name: p.Name, Region: idx, UpgradeCost: p.UpgradeCost}
	}
	modes, err := c.modes()
	if err != nil {
		return nil, err
	}

	return &Scenario{
		Grid:     grid,
		Origin:   origin,
		Ports:    ports,
		Prices:   slices.Clone(c.Prices),
		Risks:    slices.Clone(c.RiskOptions),
		Modes:    modes,
		Schedule: c.Schedule.Clone(),
		Policy:   c.Policy,
		Analysis: c.Analysis,
	}, nil
}

// Pipeline returns a single-case pipeline over s.
func (s *Scenario) Pipeline() (*scenario.Pipeline, error) {
	return scenario.NewPipeline(s.Grid, s.Origin, s.Schedule, s.Policy)
}

// Engine returns the full-enumeration engine over s.
func (s *Scenario) Engine(opts ...scenario.Option) (*scenario.Engine, error) {
	p, err := s.Pipeline()
	if err != nil {
		return nil, err
	}

	return scenario.NewEngine(p, s.Prices, s.Ports, s.Modes, s.Risks, opts...), nil
}

// Port returns the port named name.
func (s *Scenario) Port(name string) (scenario.Port, error) {
	for _, p := range s.Ports {
		if p.Name == name {
			return p, nil
		}
	}

	return scenario.Port{}, fmt.Errorf("%w: port %q", ErrUnknownRegion, name)
}

// Risk returns the risk option named name.
func (s *Scenario) Risk(name string) (transport.RiskOption, error) {
	for _, o := range s.Risks {
		if o.Name == name {
			return o, nil
		}
	}

	return transport.RiskOption{}, fmt.Errorf("config: unknown risk option %q", name)
}

// Reach records whether a mode can get from the origin to a port at all.
type Reach struct {
	Mode      transport.Mode
	Port      string
	Reachable bool
}

// Reachability checks every configured mode against every port on the
// mode's own snapshot, so regions a mode cannot enter are honored. Modes
// default to all four when none are configured.
func (s *Scenario) Reachability() ([]Reach, error) {
	modes := s.Modes
	if len(modes) == 0 {
		modes = transport.Modes()
	}
	horizon := s.Schedule.HorizonTons()
	out := make([]Reach, 0, len(modes)*len(s.Ports))
	for _, m := range modes {
		g, err := gridgraph.BuildCostPerTon(s.Grid, gridgraph.CostParams{
			Mode:        m,
			Price:       scenario.MeanPrice(s.Prices),
			HorizonTons: horizon,
			Risk:        transport.RiskOption{Name: "none"},
		})
		if err != nil {
			return nil, fmt.Errorf("config: reachability for %s: %w", m, err)
		}
		for _, p := range s.Ports {
			out = append(out, Reach{Mode: m, Port: p.Name, Reachable: g.Reachable(s.Origin, p.Region)})
		}
	}

	return out, nil
}

// grid builds the region grid with terrain flags applied. Unknown labels in
// the terrain lists are skipped here and reported by Validate.
func (c *Config) grid() (*gridgraph.Grid, error) {
	byLabel := make(map[string]*terrain.Region)
	cells := make([][]*terrain.Region, len(c.Grid))
	for y, row := range c.Grid {
		cells[y] = make([]*terrain.Region, len(row))
		for x, label := range row {
			if label == "" || label == Hole {
				continue
			}
			r := terrain.New(y, x, label)
			cells[y][x] = r
			byLabel[label] = r
		}
	}

	mark := func(labels []string, set func(*terrain.Region)) {
		for _, l := range labels {
			if r, ok := byLabel[l]; ok {
				set(r)
			}
		}
	}
	mark(c.Terrain.Rainforest, func(r *terrain.Region) { r.Rainforest = true })
	mark(c.Terrain.Mountain, func(r *terrain.Region) { r.Mountain = true })
	mark(c.Terrain.Urban, func(r *terrain.Region) { r.Urban = true })
	mark(c.Terrain.Risky, func(r *terrain.Region) { r.Risky = true })

	return gridgraph.NewGrid(cells)
}
