// Package terrain models a single grid region and the pure cost policy
// derived from its terrain flags.
//
// What:
//
//   - Region identifies a cell by (Row, Col) and a human-readable Label.
//   - Four independent terrain flags: Rainforest, Mountain, Urban, Risky.
//   - Derived costs are methods, recomputed on every call and never cached.
//
// Policy table (build costs in millions of currency units):
//
//	condition    rail   road   spoilage         security surcharge
//	mountain     400    200    -                -
//	rainforest   250    0      -                -
//	urban        100    0      -                -
//	otherwise    0      0      -                -
//	risky        n/a    n/a    3% of price/ton  15% of opex/ton
//
// When several build-cost flags are set, mountain wins over rainforest, and
// rainforest wins over urban. Electrified rail always costs twice standard rail.
//
// Traversal cost (topology-only graphs) is additive:
//
//	1 (base) + 2 (regulatory) + 8·rainforest + 3·mountain + 4·risky
//
// Multiply a build cost by UnitScale to obtain currency units.
package terrain
