package finance

import (
	"fmt"
	"math"
)

// Validate checks the policy parameters.
func (p Policy) Validate() error {
	switch {
	case p.InfrastructureLifetime <= 0:
		return fmt.Errorf("%w: infrastructure lifetime %v", ErrBadPolicy, p.InfrastructureLifetime)
	case p.FleetLifetime <= 0:
		return fmt.Errorf("%w: fleet lifetime %v", ErrBadPolicy, p.FleetLifetime)
	case p.DiscountRate <= -1 || math.IsNaN(p.DiscountRate):
		return fmt.Errorf("%w: discount rate %v", ErrBadPolicy, p.DiscountRate)
	case p.MaintenanceRate < 0 || p.ESGAnnual < 0:
		return fmt.Errorf("%w: negative maintenance rate or ESG budget", ErrBadPolicy)
	}

	return nil
}

// Project runs the cash-flow model over in.Schedule in order. Fleet size
// carries across years. Both the per-year records and the NPV come from the
// same pass. A zero Policy.BaseYear discounts to the first scheduled year.
func Project(in Input) (Projection, error) {
	if err := in.Schedule.Validate(); err != nil {
		return Projection{}, err
	}
	if err := in.Policy.Validate(); err != nil {
		return Projection{}, err
	}
	if in.FleetUnitCapacity <= 0 || in.FleetUnitCost < 0 {
		return Projection{}, fmt.Errorf("%w: capacity=%v cost=%v", ErrBadFleet, in.FleetUnitCapacity, in.FleetUnitCost)
	}
	if !finiteNonNegative(in.TransportCostPerTon) || !finiteNonNegative(in.InfrastructureCapital) {
		return Projection{}, fmt.Errorf("%w: transport cost %v, infrastructure %v",
			ErrBadPolicy, in.TransportCostPerTon, in.InfrastructureCapital)
	}

	pol := in.Policy
	proj := Projection{Years: make([]CashFlow, 0, len(in.Schedule))}
	maintenance := pol.MaintenanceRate * in.InfrastructureCapital
	infraDepreciation := in.InfrastructureCapital / pol.InfrastructureLifetime
	base := pol.BaseYear
	if base == 0 {
		base = in.Schedule[0].Year
	}
	owned := 0

	for _, y := range in.Schedule {
		units := int(math.Ceil(y.Tons / in.FleetUnitCapacity))
		var fleetCapex float64
		if units > owned {
			fleetCapex = float64(units-owned) * in.FleetUnitCost
			owned = units
		}

		cf := CashFlow{
			Year:          y.Year,
			Tons:          y.Tons,
			Price:         y.ExpectedPrice,
			FleetUnits:    owned,
			Revenue:       y.Tons * y.ExpectedPrice,
			MineOpex:      y.Tons * MineOpexPerTon(y.Tons),
			TransportOpex: y.Tons * in.TransportCostPerTon,
			FleetCapex:    fleetCapex,
			ESG:           pol.ESGAnnual,
			Maintenance:   maintenance,
			Depreciation:  infraDepreciation + fleetCapex/pol.FleetLifetime,
		}
		if pol.Insurance {
			cf.Insurance = InsuranceRate * cf.Revenue
		}
		cf.NetProfit = cf.Revenue - (cf.MineOpex + cf.TransportOpex + cf.FleetCapex +
			cf.Insurance + cf.ESG + cf.Maintenance + cf.Depreciation)
		cf.DiscountedNet = cf.NetProfit / math.Pow(1+pol.DiscountRate, float64(y.Year-base))

		proj.Years = append(proj.Years, cf)
		proj.TotalNet += cf.NetProfit
		proj.NPV += cf.DiscountedNet
	}

	return proj, nil
}
