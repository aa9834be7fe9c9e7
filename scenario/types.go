package scenario

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/haulroute/astar"
	"github.com/katalvlaran/haulroute/finance"
	"github.com/katalvlaran/haulroute/terrain"
	"github.com/katalvlaran/haulroute/transport"
)

// Sentinel errors for scenario evaluation.
var (
	// ErrUnreachable indicates the port cannot be reached from the origin for
	// a case's mode. It wraps astar.ErrNoPath.
	ErrUnreachable = fmt.Errorf("scenario: port unreachable: %w", astar.ErrNoPath)

	// ErrNilGrid indicates a pipeline without a grid.
	ErrNilGrid = errors.New("scenario: grid is nil")

	// ErrBadOrigin indicates the origin is outside the grid or a hole.
	ErrBadOrigin = errors.New("scenario: origin is not a region")

	// ErrBadPort indicates a port index outside the grid or on a hole.
	ErrBadPort = errors.New("scenario: port is not a region")

	// ErrNoCases indicates an engine with nothing to enumerate.
	ErrNoCases = errors.New("scenario: no cases to evaluate")

	// ErrNoWinner indicates every case was unreachable.
	ErrNoWinner = errors.New("scenario: every configuration is unreachable")

	// ErrEmptyHorizon indicates a schedule that ships no tonnage at all.
	ErrEmptyHorizon = errors.New("scenario: schedule ships no tonnage")

	// ErrBadDistribution indicates an empty price distribution, or a
	// negative or non-finite price or probability.
	ErrBadDistribution = errors.New("scenario: invalid price distribution")

	// ErrProbabilitySum indicates price probabilities that do not sum to 1.
	ErrProbabilitySum = errors.New("scenario: price probabilities must sum to 1")
)

// ProbabilityTolerance bounds |Σ probability − 1| for a price distribution.
const ProbabilityTolerance = 1e-9

// Port is a named destination region with a one-time upgrade cost (millions).
type Port struct {
	Name        string  `json:"name"`
	Region      int     `json:"region"`
	UpgradeCost float64 `json:"upgrade_cost"`
}

// PriceScenario is one outcome of the discrete price distribution.
type PriceScenario struct {
	Price       float64 `yaml:"price" json:"price"`
	Probability float64 `yaml:"probability" json:"probability"`
}

// ValidatePrices checks that prices is a proper distribution: non-empty,
// finite non-negative prices and probabilities, probabilities summing to 1
// within ProbabilityTolerance.
func ValidatePrices(prices []PriceScenario) error {
	if len(prices) == 0 {
		return fmt.Errorf("%w: empty", ErrBadDistribution)
	}
	var sum float64
	for _, p := range prices {
		if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return fmt.Errorf("%w: price %v", ErrBadDistribution, p.Price)
		}
		if p.Probability < 0 || math.IsNaN(p.Probability) || math.IsInf(p.Probability, 0) {
			return fmt.Errorf("%w: price %v has probability %v", ErrBadDistribution, p.Price, p.Probability)
		}
		sum += p.Probability
	}
	if math.Abs(sum-1) > ProbabilityTolerance {
		return fmt.Errorf("%w: got %v", ErrProbabilitySum, sum)
	}

	return nil
}

// Case is one fully specified evaluation.
type Case struct {
	Mode        transport.Mode       `json:"mode"`
	Port        Port                 `json:"port"`
	Risk        transport.RiskOption `json:"risk"`
	Price       float64              `json:"price"`
	Probability float64              `json:"probability"`
}

// Key returns the accumulation key of c.
func (c Case) Key() Key {
	return Key{Mode: c.Mode, Port: c.Port.Name, Risk: c.Risk.Name}
}

// Key identifies a configuration independent of price.
type Key struct {
	Mode transport.Mode `json:"mode"`
	Port string         `json:"port"`
	Risk string         `json:"risk"`
}

// Less orders keys by mode, then port name, then risk name.
func (k Key) Less(o Key) bool {
	if k.Mode != o.Mode {
		return k.Mode < o.Mode
	}
	if k.Port != o.Port {
		return k.Port < o.Port
	}

	return k.Risk < o.Risk
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Mode, k.Port, k.Risk)
}

// Outcome is the result of evaluating one Case.
type Outcome struct {
	Case       Case                `json:"case"`
	Route      []*terrain.Region   `json:"-"`
	Labels     []string            `json:"route"`
	RouteCost  float64             `json:"route_cost"`
	PerTon     transport.Breakdown `json:"per_ton"`
	PortPerTon float64             `json:"port_per_ton"`
	// CostPerTon is PerTon.Total plus PortPerTon.
	CostPerTon            float64            `json:"cost_per_ton"`
	InfrastructureCapital float64            `json:"infrastructure_capital"`
	Projection            finance.Projection `json:"projection"`
}

// Profit is the value accumulated into the expected value: the 5-year NPV.
func (o Outcome) Profit() float64 {
	return o.Projection.NPV
}

// Options configures an Engine.
type Options struct {
	Workers int
	Logger  *slog.Logger
	Order   func([]Case)
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithWorkers bounds concurrent evaluations. Panics if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("scenario: workers must be at least 1")
		}
		o.Workers = n
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOrder installs a hook that may reorder the enumerated cases before
// dispatch.
func WithOrder(fn func([]Case)) Option {
	return func(o *Options) {
		o.Order = fn
	}
}

// DefaultOptions returns GOMAXPROCS workers and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  DiscardLogger(),
	}
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
