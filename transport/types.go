package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/haulroute/terrain"
)

// Sentinel errors for transport operations.
var (
	// ErrUnknownMode indicates a mode name or value outside the closed set.
	ErrUnknownMode = errors.New("transport: unknown mode")

	// ErrEmptyPath indicates PerTonCost was given no regions.
	ErrEmptyPath = errors.New("transport: path is empty")

	// ErrHoleInPath indicates a nil region inside a path.
	ErrHoleInPath = errors.New("transport: path contains a hole")

	// ErrBadHorizon indicates a non-positive tonnage horizon.
	ErrBadHorizon = errors.New("transport: horizon tonnage must be positive")

	// ErrConflictingRisk indicates insurance and security were both selected.
	ErrConflictingRisk = errors.New("transport: insurance and security are mutually exclusive")
)

// Infrastructure is the class of track a mode runs on.
type Infrastructure int

const (
	// Rail is railway track.
	Rail Infrastructure = iota
	// Road is paved road.
	Road
)

// Mode selects one transport variant.
type Mode int

const (
	// DieselTrain runs on standard rail.
	DieselTrain Mode = iota
	// ElectricTrain runs on electrified rail at twice the track cost.
	ElectricTrain
	// DieselTruck runs on road.
	DieselTruck
	// ElectricTruck runs on road and cannot enter mountain regions.
	ElectricTruck
)

// Spec is the immutable per-mode record.
type Spec struct {
	Name           string
	Infrastructure Infrastructure
	Electrified    bool

	// OpexPerTon is the flat operating cost per ton shipped.
	OpexPerTon float64
	// HandlingFee is charged once per ton when a route mixes road and rail.
	HandlingFee float64

	// FleetUnitCost is the capital cost of one vehicle (train set or truck).
	FleetUnitCost float64
	// FleetUnitCapacity is tons one vehicle moves per year.
	FleetUnitCapacity float64

	// AvoidMountains forbids entering any mountainous region.
	AvoidMountains bool
}

var specs = [...]Spec{
	DieselTrain: {
		Name: "diesel_train", Infrastructure: Rail,
		OpexPerTon: 50, HandlingFee: 12,
		FleetUnitCost: 8_000_000, FleetUnitCapacity: 1_000_000,
	},
	ElectricTrain: {
		Name: "electric_train", Infrastructure: Rail, Electrified: true,
		OpexPerTon: 35, HandlingFee: 12,
		FleetUnitCost: 10_000_000, FleetUnitCapacity: 1_000_000,
	},
	DieselTruck: {
		Name: "diesel_truck", Infrastructure: Road,
		OpexPerTon: 90, HandlingFee: 8,
		FleetUnitCost: 250_000, FleetUnitCapacity: 20_000,
	},
	ElectricTruck: {
		Name: "electric_truck", Infrastructure: Road, Electrified: true,
		OpexPerTon: 70, HandlingFee: 8,
		FleetUnitCost: 400_000, FleetUnitCapacity: 20_000,
		AvoidMountains: true,
	},
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	return []Mode{DieselTrain, ElectricTrain, DieselTruck, ElectricTruck}
}

// Valid reports whether m belongs to the closed set.
func (m Mode) Valid() bool {
	return m >= DieselTrain && m <= ElectricTruck
}

// Spec returns the mode's record. It panics on an invalid mode.
func (m Mode) Spec() Spec {
	if !m.Valid() {
		panic(fmt.Sprintf("transport: invalid mode %d", int(m)))
	}

	return specs[m]
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", int(m))
	}

	return specs[m].Name
}

// ParseMode resolves a mode by name, case-insensitively.
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, m := range Modes() {
		if specs[m].Name == n {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// BuildCost returns r's build cost (millions) for the infrastructure m uses.
func (m Mode) BuildCost(r *terrain.Region) float64 {
	s := m.Spec()
	if s.Infrastructure == Road {
		return r.RoadBuildCost()
	}
	if s.Electrified {
		return r.ElectrifiedRailBuildCost()
	}

	return r.RailBuildCost()
}

// RailBuildCost returns r's rail-class cost for m: electrified track for
// electric modes, standard track otherwise.
func (m Mode) RailBuildCost(r *terrain.Region) float64 {
	if m.Spec().Electrified {
		return r.ElectrifiedRailBuildCost()
	}

	return r.RailBuildCost()
}

// CanEnter reports whether m may move into r.
func (m Mode) CanEnter(r *terrain.Region) bool {
	if r == nil {
		return false
	}

	return !(m.Spec().AvoidMountains && r.Mountain)
}

// RiskOption is a named risk-mitigation choice.
type RiskOption struct {
	Name      string `yaml:"name" json:"name"`
	Insurance bool   `yaml:"insurance" json:"insurance"`
	Security  bool   `yaml:"security" json:"security"`
}

// Validate rejects options selecting both insurance and security.
func (o RiskOption) Validate() error {
	if o.Insurance && o.Security {
		return fmt.Errorf("%w: option %q", ErrConflictingRisk, o.Name)
	}

	return nil
}

// RiskPerTon returns the per-ton risk term for a single region: zero under
// insurance, the security surcharge under security, spoilage otherwise.
func (o RiskOption) RiskPerTon(r *terrain.Region, m Mode, price float64) float64 {
	switch {
	case o.Insurance:
		return 0
	case o.Security:
		return r.SecuritySurchargeRate() * m.Spec().OpexPerTon
	default:
		return r.SpoilageLossPerTon(price)
	}
}

// Breakdown itemizes the per-ton cost of a route.
type Breakdown struct {
	Capital   float64 `json:"capital"`
	Operating float64 `json:"operating"`
	Risk      float64 `json:"risk"`
	Handling  float64 `json:"handling"`
	Total     float64 `json:"total"`
}
