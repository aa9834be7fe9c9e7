package report

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Document is a full evaluation report. Sections left nil were not run.
type Document struct {
	RunID       uuid.UUID     `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Source      string        `json:"source,omitempty"`
	Ranking     []RankEntry   `json:"ranking,omitempty"`
	Winner      *Winner       `json:"winner,omitempty"`
	Unreachable []Unreachable `json:"unreachable,omitempty"`
	Sensitivity *Sensitivity  `json:"sensitivity,omitempty"`
	MonteCarlo  *MonteCarlo   `json:"monte_carlo,omitempty"`
}

// RankEntry is one configuration in the expected-value ranking.
type RankEntry struct {
	Rank          int             `json:"rank"`
	Mode          string          `json:"mode"`
	Port          string          `json:"port"`
	Risk          string          `json:"risk"`
	ExpectedValue decimal.Decimal `json:"expected_value"`
}

// Unreachable is a case with no route.
type Unreachable struct {
	Mode  string          `json:"mode"`
	Port  string          `json:"port"`
	Risk  string          `json:"risk"`
	Price decimal.Decimal `json:"price"`
}

// Winner details one evaluated configuration at a single price.
type Winner struct {
	Mode                  string          `json:"mode"`
	Port                  string          `json:"port"`
	Risk                  string          `json:"risk"`
	Price                 decimal.Decimal `json:"price"`
	Route                 []string        `json:"route"`
	Capital               decimal.Decimal `json:"capital_per_ton"`
	Operating             decimal.Decimal `json:"operating_per_ton"`
	RiskPerTon            decimal.Decimal `json:"risk_per_ton"`
	Handling              decimal.Decimal `json:"handling_per_ton"`
	PortUpgrade           decimal.Decimal `json:"port_upgrade_per_ton"`
	CostPerTon            decimal.Decimal `json:"cost_per_ton"`
	InfrastructureCapital decimal.Decimal `json:"infrastructure_capital"`
	CashFlow              []CashFlowRow   `json:"cash_flow"`
	TotalNet              decimal.Decimal `json:"total_net"`
	NPV                   decimal.Decimal `json:"npv"`
}

// CashFlowRow is one projected year.
type CashFlowRow struct {
	Year          int             `json:"year"`
	Tons          decimal.Decimal `json:"tons"`
	Price         decimal.Decimal `json:"price"`
	FleetUnits    int             `json:"fleet_units"`
	Revenue       decimal.Decimal `json:"revenue"`
	MineOpex      decimal.Decimal `json:"mine_opex"`
	TransportOpex decimal.Decimal `json:"transport_opex"`
	FleetCapex    decimal.Decimal `json:"fleet_capex"`
	Insurance     decimal.Decimal `json:"insurance"`
	ESG           decimal.Decimal `json:"esg"`
	Maintenance   decimal.Decimal `json:"maintenance"`
	Depreciation  decimal.Decimal `json:"depreciation"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	DiscountedNet decimal.Decimal `json:"discounted_net"`
}

// Sensitivity is a price × tonnage sweep.
type Sensitivity struct {
	Mode   string            `json:"mode"`
	Port   string            `json:"port"`
	Risk   string            `json:"risk"`
	Prices []decimal.Decimal `json:"prices"`
	Tons   []decimal.Decimal `json:"tons"`
	Cells  []SensitivityCell `json:"cells"`
}

// SensitivityCell is one sweep point. Profits are nil when unreachable.
type SensitivityCell struct {
	Price            decimal.Decimal  `json:"price"`
	Tons             decimal.Decimal  `json:"tons"`
	SingleYearProfit *decimal.Decimal `json:"single_year_profit"`
	NPV              *decimal.Decimal `json:"npv"`
}

// MonteCarlo summarizes a simulation.
type MonteCarlo struct {
	Mode            string          `json:"mode"`
	Port            string          `json:"port"`
	Risk            string          `json:"risk"`
	Seed            uint64          `json:"seed"`
	Trials          int             `json:"trials"`
	Valid           int             `json:"valid"`
	Unreachable     int             `json:"unreachable"`
	Mean            decimal.Decimal `json:"mean"`
	StdDev          decimal.Decimal `json:"std_dev"`
	LossProbability decimal.Decimal `json:"loss_probability"`
	P5              decimal.Decimal `json:"p5"`
	P50             decimal.Decimal `json:"p50"`
	P95             decimal.Decimal `json:"p95"`
}

// Money rounds v to cents. Non-finite values map to zero.
func Money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(v).Round(2)
}

// ratio rounds a probability to four places.
func ratio(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(v).Round(4)
}
