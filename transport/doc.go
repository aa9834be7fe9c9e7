// Package transport defines the closed set of transport modes, the
// risk-mitigation policy, and the reduction of a route into a single
// amortized cost per ton.
//
// Modes:
//
//	mode            infra  electrified  opex/t  handling/t  constraint
//	diesel_train    rail   no           50      12          -
//	electric_train  rail   yes          35      12          -
//	diesel_truck    road   no           90      8           -
//	electric_truck  road   yes          70      8           cannot enter mountains
//
// Each Mode carries its Spec record, so build-cost selection and traversal
// constraints are table lookups rather than scattered conditionals.
//
// Risk mitigation is one of: insurance (risk term 0), private security
// (surcharge on operating cost in risky regions) or nothing (spoilage loss in
// risky regions). Insurance and security are mutually exclusive.
//
// PerTonCost:
//
//	capital  = Σ buildCost(mode) · UnitScale / horizonTons
//	operating= mode.OpexPerTon
//	risk     = Σ spoilage | Σ surcharge | 0
//	handling = mode.HandlingFee, once, if the route mixes road and rail
//
// Complexity: O(len(path)).
package transport
