package explore

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/haulroute/scenario"
)

// InverseCDF maps a uniform draw u ∈ [0,1) onto dist. Entries are taken in
// the given order; draws beyond the cumulative total fall on the last entry.
func InverseCDF(dist []scenario.PriceScenario, u float64) float64 {
	var cum float64
	for _, d := range dist {
		cum += d.Probability
		if u < cum {
			return d.Price
		}
	}

	return dist[len(dist)-1].Price
}

func validateDistribution(dist []scenario.PriceScenario) error {
	if len(dist) == 0 {
		return ErrEmptyDistribution
	}
	if err := scenario.ValidatePrices(dist); err != nil {
		return fmt.Errorf("%w: %w", ErrBadProbability, err)
	}

	return nil
}

// MonteCarlo runs trials evaluations of base's configuration, each at a
// price drawn from dist. The undiscounted 5-year total net profit of each
// trial feeds the statistics. With every trial unreachable it returns
// ErrEmptySample alongside a Summary whose Valid is 0.
func MonteCarlo(ctx context.Context, p *scenario.Pipeline, base scenario.Case, dist []scenario.PriceScenario, trials int, seed uint64, opts ...Option) (Summary, error) {
	cfg := buildOptions(opts)
	if trials <= 0 {
		return Summary{}, fmt.Errorf("%w: %d", ErrBadTrials, trials)
	}
	if err := validateDistribution(dist); err != nil {
		return Summary{}, err
	}

	// 1) Draw every price up front so the sample depends on seed alone
	rng := rand.New(rand.NewPCG(seed, seed))
	prices := make([]float64, trials)
	for i := range prices {
		prices[i] = InverseCDF(dist, rng.Float64())
	}

	// 2) Evaluate trials concurrently into fixed slots
	outcomes := make([]*float64, trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, price := range prices {
		g.Go(func() error {
			c := base
			c.Price, c.Probability = price, 1
			out, err := p.Evaluate(gctx, c)
			if errors.Is(err, scenario.ErrUnreachable) {
				return nil
			}
			if err != nil {
				return err
			}
			v := out.Projection.TotalNet
			outcomes[i] = &v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	// 3) Statistics over valid trials
	s := Summary{Key: base.Key(), Seed: seed, Trials: trials, Outcomes: outcomes}
	values := make([]float64, 0, trials)
	losses := 0
	for _, o := range outcomes {
		if o == nil {
			continue
		}
		values = append(values, *o)
		if *o < 0 {
			losses++
		}
	}
	s.Valid = len(values)
	s.Unreachable = trials - s.Valid
	if s.Valid == 0 {
		cfg.Logger.Info("monte carlo produced no valid trials", "key", s.Key.String(), "trials", trials)
		return s, ErrEmptySample
	}

	s.Mean, s.StdDev = stat.PopMeanStdDev(values, nil)
	s.LossProbability = float64(losses) / float64(s.Valid)
	slices.Sort(values)
	s.P5 = stat.Quantile(0.05, stat.Empirical, values, nil)
	s.P50 = stat.Quantile(0.50, stat.Empirical, values, nil)
	s.P95 = stat.Quantile(0.95, stat.Empirical, values, nil)
	cfg.Logger.Debug("monte carlo done", "key", s.Key.String(), "valid", s.Valid, "mean", s.Mean)

	return s, nil
}
