// Package scenario evaluates transport configurations under price
// uncertainty and picks the one with the highest expected value.
//
// A Pipeline evaluates one Case:
//
//	BuildCostPerTon → astar.Search(origin, port) → transport.PerTonCost
//	  + port upgrade / horizon → finance.Project → Outcome
//
// An Engine enumerates prices × ports × modes × risk options, runs every Case
// on its own graph snapshot through an errgroup, and folds
// profit × probability into an Accumulator keyed by (mode, port, risk).
// Sums are kept as shopspring/decimal values, so the reduction is exact and
// independent of completion order.
//
// Unreachable cases (ErrUnreachable) are reported in Result.Unreachable and
// contribute nothing. The winner is the key with the largest expected value;
// equal values fall back to Key.Less.
package scenario
