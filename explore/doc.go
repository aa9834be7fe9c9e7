// Package explore stresses a chosen configuration: a price × demand
// sensitivity sweep and a Monte Carlo simulation over the discrete price
// distribution.
//
// Sensitivity:
//
//   - Prices are Steps evenly spaced values over [Min, Max].
//   - Demand values are the schedule's distinct tonnages.
//   - Each cell substitutes the first year's tonnage through
//     finance.Schedule.WithFirstYearTons, so the pipeline's schedule is
//     never modified, even when cells are unreachable or the context is
//     cancelled mid-sweep.
//   - Each cell reports the first year's net profit and the 5-year NPV.
//   - A cell with no route, or whose substituted schedule ships nothing at
//     all, is reported with Reachable false instead of failing the sweep.
//
// Monte Carlo:
//
//   - Uniform draws come from a PCG source seeded by the caller, drawn
//     sequentially before any evaluation, so a seed always yields the same
//     prices regardless of worker count.
//   - Prices are sampled by inverse CDF over the discrete distribution.
//   - Trial profit is the undiscounted 5-year total. Unreachable trials are
//     kept as nil markers and excluded from statistics.
//   - Statistics use gonum/stat: population mean and standard deviation,
//     empirical quantiles, and the share of negative outcomes.
//
// Errors:
//
//   - ErrEmptySample: every trial was unreachable; Summary.Valid == 0.
//   - ErrEmptyDistribution, ErrBadTrials, ErrBadAxis.
//   - ErrBadProbability: the distribution fails scenario.ValidatePrices,
//     including probabilities that do not sum to 1.
package explore
