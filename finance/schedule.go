package finance

import (
	"fmt"
	"math"
	"slices"
)

// Validate checks ordering and numeric sanity of every entry.
func (s Schedule) Validate() error {
	if len(s) == 0 {
		return ErrEmptySchedule
	}
	for i, y := range s {
		if i > 0 && y.Year <= s[i-1].Year {
			return fmt.Errorf("%w: %d after %d", ErrScheduleOrder, y.Year, s[i-1].Year)
		}
		if !finiteNonNegative(y.Tons) {
			return fmt.Errorf("%w: year %d tons=%v", ErrBadTonnage, y.Year, y.Tons)
		}
		if !finiteNonNegative(y.ExpectedPrice) {
			return fmt.Errorf("%w: year %d price=%v", ErrBadPrice, y.Year, y.ExpectedPrice)
		}
	}

	return nil
}

// HorizonTons returns the total tonnage shipped over the schedule.
func (s Schedule) HorizonTons() float64 {
	var sum float64
	for _, y := range s {
		sum += y.Tons
	}

	return sum
}

// DistinctTons returns the unique tonnages in ascending order.
func (s Schedule) DistinctTons() []float64 {
	out := make([]float64, 0, len(s))
	for _, y := range s {
		out = append(out, y.Tons)
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// Clone returns an independent copy of s.
func (s Schedule) Clone() Schedule {
	return slices.Clone(s)
}

// WithFirstYearTons returns a copy of s whose first entry ships tons.
// s itself is left untouched.
func (s Schedule) WithFirstYearTons(tons float64) Schedule {
	out := s.Clone()
	if len(out) > 0 {
		out[0].Tons = tons
	}

	return out
}

// WithPrice returns a copy of s with every expected price set to price.
func (s Schedule) WithPrice(price float64) Schedule {
	out := s.Clone()
	for i := range out {
		out[i].ExpectedPrice = price
	}

	return out
}

// MineOpexPerTon returns the mine operating cost per ton for a year
// producing tons. Larger operations enjoy lower marginal cost.
func MineOpexPerTon(tons float64) float64 {
	switch {
	case tons < SmallMineTons:
		return SmallMineOpex
	case tons < MediumMineTons:
		return MediumMineOpex
	default:
		return LargeMineOpex
	}
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
