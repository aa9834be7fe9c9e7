// Package report turns engine and explorer results into a Document that can
// be written as JSON or as aligned plain-text tables.
//
// Currency amounts are carried as shopspring/decimal values rounded to cents;
// expected values come from the accumulator's exact sums. Each Document is
// stamped with a random run ID.
package report
