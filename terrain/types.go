package terrain

import "fmt"

// UnitScale converts build costs (millions) into currency units.
const UnitScale = 1_000_000.0

// Build costs per region, in millions of currency units.
const (
	MountainRailCost   = 400.0
	RainforestRailCost = 250.0
	UrbanRailCost      = 100.0
	MountainRoadCost   = 200.0

	// ElectrificationFactor multiplies standard rail cost for electrified track.
	ElectrificationFactor = 2.0
)

// Traversal cost terms used by topology-only graphs.
const (
	BaseTraversal       = 1.0
	RegulatoryTraversal = 2.0
	RainforestTraversal = 8.0
	MountainTraversal   = 3.0
	RiskyTraversal      = 4.0
)

// Risk rates applied in risky regions.
const (
	// SpoilageRate is the share of the commodity price lost per ton.
	SpoilageRate = 0.03
	// SecurityRate is the share of the operating cost per ton charged for escorts.
	SecurityRate = 0.15
)

// Region is one grid cell. Terrain flags are set once at load time and are
// treated as immutable afterwards.
type Region struct {
	Row, Col int
	Label    string

	Rainforest bool
	Mountain   bool
	Urban      bool
	Risky      bool
}

// New returns a Region at (row, col) with no terrain flags.
func New(row, col int, label string) *Region {
	return &Region{Row: row, Col: col, Label: label}
}

// String implements fmt.Stringer.
func (r *Region) String() string {
	if r == nil {
		return "<hole>"
	}

	return fmt.Sprintf("%s(%d,%d)", r.Label, r.Row, r.Col)
}
