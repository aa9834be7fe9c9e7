// Package finance projects a transport configuration into a multi-year cash
// flow and its net present value.
//
// Per year, in schedule order:
//
//	units        = ceil(tons / fleetUnitCapacity)
//	fleetCapex   = max(0, units - owned) · fleetUnitCost       (fleet only grows)
//	revenue      = tons · price
//	mineOpex     = tons · MineOpexPerTon(tons)
//	transport    = tons · transportCostPerTon
//	insurance    = 1% of revenue when enabled
//	esg          = policy.ESGAnnual
//	maintenance  = policy.MaintenanceRate · infrastructureCapital
//	depreciation = infrastructureCapital / infraLifetime + fleetCapex / fleetLifetime
//	net          = revenue - (mineOpex + transport + fleetCapex + insurance + esg + maintenance + depreciation)
//	discounted   = net / (1 + rate)^(year - baseYear)
//
// Project returns both the per-year records and the totals from one pass.
//
// Schedule helpers never mutate their receiver: WithFirstYearTons and
// WithPrice return fresh copies, which is what makes sensitivity sweeps safe
// to run concurrently.
package finance
