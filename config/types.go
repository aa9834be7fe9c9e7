package config

import (
	"errors"

	"github.com/katalvlaran/haulroute/finance"
	"github.com/katalvlaran/haulroute/scenario"
	"github.com/katalvlaran/haulroute/transport"
)

// Sentinel errors for configuration validation.
var (
	// ErrProbabilitySum indicates price probabilities that do not sum to 1.
	ErrProbabilitySum = errors.New("config: price probabilities must sum to 1")
	// ErrUnknownRegion indicates a label that names no grid cell.
	ErrUnknownRegion = errors.New("config: unknown region label")
	// ErrNoPorts indicates an empty port list.
	ErrNoPorts = errors.New("config: at least one port is required")
	// ErrDuplicatePort indicates two ports sharing a name.
	ErrDuplicatePort = errors.New("config: duplicate port name")
	// ErrBadPort indicates a port with an empty name or negative upgrade cost.
	ErrBadPort = errors.New("config: invalid port")
	// ErrNoPrices indicates an empty price distribution.
	ErrNoPrices = errors.New("config: at least one price scenario is required")
	// ErrNoRiskOptions indicates an empty risk option list.
	ErrNoRiskOptions = errors.New("config: at least one risk option is required")
	// ErrDuplicateRisk indicates two risk options sharing a name.
	ErrDuplicateRisk = errors.New("config: duplicate risk option name")
	// ErrBadRisk indicates a risk option with an empty name.
	ErrBadRisk = errors.New("config: risk option name is required")
	// ErrDuplicateMode indicates a mode listed more than once.
	ErrDuplicateMode = errors.New("config: duplicate mode")
	// ErrBadAnalysis indicates negative analysis parameters.
	ErrBadAnalysis = errors.New("config: invalid analysis settings")
)

// ProbabilityTolerance bounds |Σ probability − 1|.
const ProbabilityTolerance = scenario.ProbabilityTolerance

// Hole is the grid token for an absent cell, alongside the empty string.
const Hole = "."

// Config mirrors the scenario file.
type Config struct {
	Grid        [][]string               `yaml:"grid"`
	Terrain     Terrain                  `yaml:"terrain"`
	Origin      string                   `yaml:"origin"`
	Ports       []Port                   `yaml:"ports"`
	Prices      []scenario.PriceScenario `yaml:"prices"`
	RiskOptions []transport.RiskOption   `yaml:"risk_options"`
	Modes       []string                 `yaml:"modes"`
	Schedule    finance.Schedule         `yaml:"schedule"`
	Policy      finance.Policy           `yaml:"policy"`
	Analysis    Analysis                 `yaml:"analysis"`
}

// Terrain lists the labels carrying each terrain flag.
type Terrain struct {
	Rainforest []string `yaml:"rainforest"`
	Mountain   []string `yaml:"mountain"`
	Urban      []string `yaml:"urban"`
	Risky      []string `yaml:"risky"`
}

// Port names a destination region. UpgradeCost is in millions.
type Port struct {
	Name        string  `yaml:"name"`
	Region      string  `yaml:"region"`
	UpgradeCost float64 `yaml:"upgrade_cost"`
}

// Analysis holds exploration knobs. Zero Workers means GOMAXPROCS.
type Analysis struct {
	Workers    int    `yaml:"workers"`
	Trials     int    `yaml:"trials"`
	Seed       uint64 `yaml:"seed"`
	PriceSteps int    `yaml:"price_steps"`
}

// DefaultAnalysis returns the analysis defaults.
func DefaultAnalysis() Analysis {
	return Analysis{Trials: 10_000, Seed: 1, PriceSteps: 5}
}
