package scenario

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

// Ranked is a key with its accumulated expected value.
type Ranked struct {
	Key Key     `json:"key"`
	EV  float64 `json:"expected_value"`

	exact decimal.Decimal
}

// Exact returns the accumulated value without float rounding.
func (r Ranked) Exact() decimal.Decimal { return r.exact }

// Accumulator sums probability-weighted profit per key. It is safe for
// concurrent use and its sums do not depend on the order of Add calls.
type Accumulator struct {
	mu   sync.Mutex
	sums map[Key]decimal.Decimal
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{sums: make(map[Key]decimal.Decimal)}
}

// Add folds profit × probability into k.
func (a *Accumulator) Add(k Key, profit, probability float64) {
	v := decimal.NewFromFloat(profit).Mul(decimal.NewFromFloat(probability))
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sums[k] = a.sums[k].Add(v)
}

// Len returns the number of keys seen.
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.sums)
}

// Ranking returns every key ordered by expected value, highest first. Equal
// values are ordered by Key.Less.
func (a *Accumulator) Ranking() []Ranked {
	a.mu.Lock()
	out := make([]Ranked, 0, len(a.sums))
	for k, v := range a.sums {
		out = append(out, Ranked{Key: k, EV: v.InexactFloat64(), exact: v})
	}
	a.mu.Unlock()

	slices.SortFunc(out, func(x, y Ranked) int {
		if c := y.exact.Cmp(x.exact); c != 0 {
			return c
		}
		switch {
		case x.Key.Less(y.Key):
			return -1
		case y.Key.Less(x.Key):
			return 1
		}
		return 0
	})

	return out
}
