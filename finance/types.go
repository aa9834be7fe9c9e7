package finance

import "errors"

// Sentinel errors for projections and schedules.
var (
	// ErrEmptySchedule indicates a schedule with no years.
	ErrEmptySchedule = errors.New("finance: schedule is empty")
	// ErrScheduleOrder indicates years that are not strictly increasing.
	ErrScheduleOrder = errors.New("finance: schedule years must be strictly increasing")
	// ErrBadTonnage indicates a negative, NaN or infinite tonnage.
	ErrBadTonnage = errors.New("finance: tonnage must be a finite non-negative number")
	// ErrBadPrice indicates a negative, NaN or infinite price.
	ErrBadPrice = errors.New("finance: price must be a finite non-negative number")
	// ErrBadFleet indicates a non-positive fleet unit capacity or negative unit cost.
	ErrBadFleet = errors.New("finance: fleet capacity must be positive and unit cost non-negative")
	// ErrBadPolicy indicates invalid policy parameters.
	ErrBadPolicy = errors.New("finance: invalid policy")
)

// Mine operating cost tiers, per ton.
const (
	SmallMineTons  = 500_000.0
	MediumMineTons = 14_000_000.0

	SmallMineOpex  = 2600.0
	MediumMineOpex = 2100.0
	LargeMineOpex  = 1750.0

	// InsuranceRate is the share of revenue paid for cargo insurance.
	InsuranceRate = 0.01
)

// Year is one production schedule entry.
type Year struct {
	Year          int     `yaml:"year" json:"year"`
	Tons          float64 `yaml:"tons" json:"tons"`
	ExpectedPrice float64 `yaml:"price" json:"price"`
}

// Schedule is an ordered production plan, one entry per projection year.
type Schedule []Year

// Policy carries the financial policy toggles.
type Policy struct {
	Insurance              bool    `yaml:"-" json:"insurance"`
	ESGAnnual              float64 `yaml:"esg_annual" json:"esg_annual"`
	MaintenanceRate        float64 `yaml:"maintenance_rate" json:"maintenance_rate"`
	InfrastructureLifetime float64 `yaml:"infrastructure_lifetime" json:"infrastructure_lifetime"`
	FleetLifetime          float64 `yaml:"fleet_lifetime" json:"fleet_lifetime"`
	DiscountRate           float64 `yaml:"discount_rate" json:"discount_rate"`
	BaseYear               int     `yaml:"base_year" json:"base_year"`
}

// DefaultPolicy returns the reference policy parameters.
func DefaultPolicy() Policy {
	return Policy{
		ESGAnnual:              5_000_000,
		MaintenanceRate:        0.02,
		InfrastructureLifetime: 30,
		FleetLifetime:          15,
		DiscountRate:           0.08,
	}
}

// Input is everything Project needs.
type Input struct {
	TransportCostPerTon   float64
	Schedule              Schedule
	FleetUnitCost         float64
	FleetUnitCapacity     float64
	InfrastructureCapital float64
	Policy                Policy
}

// CashFlow is one projected year. Records are never mutated after creation.
type CashFlow struct {
	Year          int     `json:"year"`
	Tons          float64 `json:"tons"`
	Price         float64 `json:"price"`
	FleetUnits    int     `json:"fleet_units"`
	Revenue       float64 `json:"revenue"`
	MineOpex      float64 `json:"mine_opex"`
	TransportOpex float64 `json:"transport_opex"`
	FleetCapex    float64 `json:"fleet_capex"`
	Insurance     float64 `json:"insurance"`
	ESG           float64 `json:"esg"`
	Maintenance   float64 `json:"maintenance"`
	Depreciation  float64 `json:"depreciation"`
	NetProfit     float64 `json:"net_profit"`
	DiscountedNet float64 `json:"discounted_net"`
}

// Projection is the result of a single pass over a schedule.
type Projection struct {
	Years    []CashFlow `json:"years"`
	TotalNet float64    `json:"total_net"`
	NPV      float64    `json:"npv"`
}

// FirstYearNet returns the first year's undiscounted net profit.
func (p Projection) FirstYearNet() float64 {
	if len(p.Years) == 0 {
		return 0
	}

	return p.Years[0].NetProfit
}
