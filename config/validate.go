package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/haulroute/finance"
	"github.com/katalvlaran/haulroute/transport"
)

// Validate reports every configuration problem at once, joined with
// errors.Join. A nil result means Materialize will succeed.
func (c *Config) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	// 1) Territory
	grid, err := c.grid()
	add(err)
	known := func(label, what string) {
		if grid == nil {
			return
		}
		if _, err := grid.Lookup(label); err != nil {
			add(fmt.Errorf("%w: %s %q", ErrUnknownRegion, what, label))
		}
	}
	if grid != nil {
		for _, l := range c.Terrain.Rainforest {
			known(l, "rainforest")
		}
		for _, l := range c.Terrain.Mountain {
			known(l, "mountain")
		}
		for _, l := range c.Terrain.Urban {
			known(l, "urban")
		}
		for _, l := range c.Terrain.Risky {
			known(l, "risky")
		}
		known(c.Origin, "origin")
	}

	// 2) Ports
	if len(c.Ports) == 0 {
		add(ErrNoPorts)
	}
	seen := make(map[string]struct{}, len(c.Ports))
	for _, p := range c.Ports {
		if p.Name == "" || p.UpgradeCost < 0 || math.IsNaN(p.UpgradeCost) {
			add(fmt.Errorf("%w: %+v", ErrBadPort, p))
		}
		if _, dup := seen[p.Name]; dup {
			add(fmt.Errorf("%w: %q", ErrDuplicatePort, p.Name))
		}
		seen[p.Name] = struct{}{}
		known(p.Region, "port "+p.Name)
	}

	// 3) Price distribution
	if len(c.Prices) == 0 {
		add(ErrNoPrices)
	}
	var sum float64
	for _, p := range c.Prices {
		if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			add(fmt.Errorf("%w: %v", finance.ErrBadPrice, p.Price))
		}
		if p.Probability < 0 || math.IsNaN(p.Probability) {
			add(fmt.Errorf("%w: negative probability %v", ErrProbabilitySum, p.Probability))
		}
		sum += p.Probability
	}
	if len(c.Prices) > 0 && math.Abs(sum-1) > ProbabilityTolerance {
		add(fmt.Errorf("%w: got %v", ErrProbabilitySum, sum))
	}

	// 4) Risk options and modes
	if len(c.RiskOptions) == 0 {
		add(ErrNoRiskOptions)
	}
	risks := make(map[string]struct{}, len(c.RiskOptions))
	for _, o := range c.RiskOptions {
		add(o.Validate())
		if o.Name == "" {
			add(fmt.Errorf("%w: %+v", ErrBadRisk, o))
			continue
		}
		if _, dup := risks[o.Name]; dup {
			add(fmt.Errorf("%w: %q", ErrDuplicateRisk, o.Name))
		}
		risks[o.Name] = struct{}{}
	}
	_, err = c.modes()
	add(err)

	// 5) Schedule, policy, analysis
	add(c.Schedule.Validate())
	add(c.Policy.Validate())
	if c.Analysis.Workers < 0 || c.Analysis.Trials < 0 || c.Analysis.PriceSteps < 0 {
		add(fmt.Errorf("%w: %+v", ErrBadAnalysis, c.Analysis))
	}

	return errors.Join(errs...)
}

func (c *Config) modes() ([]transport.Mode, error) {
	var (
		out  []transport.Mode
		errs []error
	)
	seen := make(map[transport.Mode]struct{}, len(c.Modes))
	for _, name := range c.Modes {
		m, err := transport.ParseMode(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := seen[m]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateMode, m))
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}

	return out, errors.Join(errs...)
}
