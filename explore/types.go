package explore

import (
	"errors"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/haulroute/scenario"
)

// Sentinel errors for exploration.
var (
	// ErrEmptySample indicates that no Monte Carlo trial produced a result.
	ErrEmptySample = errors.New("explore: no valid trials")
	// ErrEmptyDistribution indicates a price distribution with no entries.
	ErrEmptyDistribution = errors.New("explore: price distribution is empty")
	// ErrBadProbability indicates a distribution rejected by
	// scenario.ValidatePrices; the cause is wrapped alongside it.
	ErrBadProbability = errors.New("explore: invalid probability")
	// ErrBadTrials indicates a non-positive trial count.
	ErrBadTrials = errors.New("explore: trials must be positive")
	// ErrBadAxis indicates an inverted price range or negative step count.
	ErrBadAxis = errors.New("explore: invalid price axis")
)

// DefaultTrials is the Monte Carlo trial count used when none is configured.
const DefaultTrials = 10_000

// PriceAxis spans the sensitivity sweep's price dimension.
type PriceAxis struct {
	Min, Max float64
	Steps    int
}

// Row is one sensitivity cell.
type Row struct {
	Price            float64 `json:"price"`
	Tons             float64 `json:"tons"`
	Reachable        bool    `json:"reachable"`
	SingleYearProfit float64 `json:"single_year_profit"`
	NPV              float64 `json:"npv"`
}

// Table is a full sensitivity sweep, rows ordered by tons then price.
type Table struct {
	Key    scenario.Key `json:"key"`
	Prices []float64    `json:"prices"`
	Tons   []float64    `json:"tons"`
	Rows   []Row        `json:"rows"`
}

// Summary holds Monte Carlo statistics.
type Summary struct {
	Key             scenario.Key `json:"key"`
	Seed            uint64       `json:"seed"`
	Trials          int          `json:"trials"`
	Valid           int          `json:"valid"`
	Unreachable     int          `json:"unreachable"`
	Mean            float64      `json:"mean"`
	StdDev          float64      `json:"std_dev"`
	LossProbability float64      `json:"loss_probability"`
	P5              float64      `json:"p5"`
	P50             float64      `json:"p50"`
	P95             float64      `json:"p95"`

	// Outcomes holds one entry per trial; nil marks an unreachable trial.
	Outcomes []*float64 `json:"-"`
}

// Options configures Sensitivity and MonteCarlo.
type Options struct {
	Workers int
	Logger  *slog.Logger
}

// Option represents a functional option for configuring exploration.
type Option func(*Options)

// WithWorkers bounds concurrent evaluations. Panics if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("explore: workers must be at least 1")
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

func buildOptions(opts []Option) Options {
	cfg := Options{Workers: runtime.GOMAXPROCS(0), Logger: scenario.DiscardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
