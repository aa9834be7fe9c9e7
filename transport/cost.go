package transport

import (
	"fmt"

	"github.com/katalvlaran/haulroute/terrain"
)

// RegionCostPerTon returns the per-ton cost attributed to a single region:
// its amortized build cost, the mode's operating cost and its risk term.
// Graph edge weights average this value over both endpoints.
func RegionCostPerTon(r *terrain.Region, m Mode, price, horizonTons float64, risk RiskOption) float64 {
	capital := m.BuildCost(r) * terrain.UnitScale / horizonTons

	return capital + m.Spec().OpexPerTon + risk.RiskPerTon(r, m, price)
}

// PerTonCost reduces a route into a single amortized cost per ton.
//
// Steps:
//  1. Sum each region's build cost for m, scale to currency units and divide
//     by horizonTons.
//  2. Add m's flat operating cost once.
//  3. Add exactly one risk term summed over the route.
//  4. Add m's handling fee once if one region needs road and a different
//     region needs rail for m.
//
// Returns ErrEmptyPath, ErrHoleInPath, ErrBadHorizon, ErrConflictingRisk
// or ErrUnknownMode on invalid input.
func PerTonCost(path []*terrain.Region, m Mode, price, horizonTons float64, risk RiskOption) (Breakdown, error) {
	if err := validate(path, m, horizonTons, risk); err != nil {
		return Breakdown{}, err
	}

	var b Breakdown
	for _, r := range path {
		b.Capital += m.BuildCost(r)
		b.Risk += risk.RiskPerTon(r, m, price)
	}
	b.Capital = b.Capital * terrain.UnitScale / horizonTons
	b.Operating = m.Spec().OpexPerTon
	if MixesInfrastructure(path, m) {
		b.Handling = m.Spec().HandlingFee
	}
	b.Total = b.Capital + b.Operating + b.Risk + b.Handling

	return b, nil
}

// MixesInfrastructure reports whether path has a region with nonzero road
// cost and a different region with nonzero rail cost for m.
func MixesInfrastructure(path []*terrain.Region, m Mode) bool {
	roadAt, railAt := -1, -1
	for i, r := range path {
		if r.RoadBuildCost() > 0 {
			if railAt >= 0 && railAt != i {
				return true
			}
			if roadAt < 0 {
				roadAt = i
			}
		}
		if m.RailBuildCost(r) > 0 {
			if roadAt >= 0 && roadAt != i {
				return true
			}
			if railAt < 0 {
				railAt = i
			}
		}
	}

	return false
}

// InfrastructureCapital returns the total build cost of path for m in
// currency units.
func InfrastructureCapital(path []*terrain.Region, m Mode) float64 {
	var sum float64
	for _, r := range path {
		if r == nil {
			continue
		}
		sum += m.BuildCost(r)
	}

	return sum * terrain.UnitScale
}

func validate(path []*terrain.Region, m Mode, horizonTons float64, risk RiskOption) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	for i, r := range path {
		if r == nil {
			return fmt.Errorf("%w: index %d", ErrHoleInPath, i)
		}
	}
	if horizonTons <= 0 {
		return fmt.Errorf("%w: %v", ErrBadHorizon, horizonTons)
	}

	return risk.Validate()
}
