// Package config loads a haulroute scenario file.
//
// A scenario file is YAML describing the territory (grid of region labels and
// terrain classification lists), the origin and candidate ports, the price
// distribution, risk-mitigation options, the transport modes to compare, the
// production schedule, the financial policy and analysis knobs.
//
// Usage:
//
//	cfg, err := config.Load("territory.yaml")
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }  // every problem, joined
//	m, err := cfg.Materialize()
//	p, err := m.Pipeline()
//
// Load starts from DefaultPolicy and DefaultAnalysis, so omitted policy and
// analysis fields keep their defaults. Unknown keys are rejected.
package config
