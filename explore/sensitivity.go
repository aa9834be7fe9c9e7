package explore

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/haulroute/scenario"
)

// AxisFromDistribution spans the observed scenario prices with steps points.
func AxisFromDistribution(prices []scenario.PriceScenario, steps int) PriceAxis {
	ax := PriceAxis{Min: math.Inf(1), Max: math.Inf(-1), Steps: steps}
	for _, p := range prices {
		ax.Min = math.Min(ax.Min, p.Price)
		ax.Max = math.Max(ax.Max, p.Price)
	}
	if len(prices) == 0 {
		ax.Min, ax.Max = 0, 0
	}

	return ax
}

// Values returns the axis points. A degenerate range or fewer than two steps
// yields the single value Min.
func (a PriceAxis) Values() ([]float64, error) {
	if a.Steps < 0 || a.Max < a.Min || math.IsNaN(a.Min) || math.IsNaN(a.Max) {
		return nil, fmt.Errorf("%w: [%v, %v] steps=%d", ErrBadAxis, a.Min, a.Max, a.Steps)
	}
	if a.Steps < 2 || a.Max == a.Min {
		return []float64{a.Min}, nil
	}
	out := make([]float64, a.Steps)
	step := (a.Max - a.Min) / float64(a.Steps-1)
	for i := range out {
		out[i] = a.Min + float64(i)*step
	}
	out[a.Steps-1] = a.Max

	return out, nil
}

// Sensitivity sweeps price × first-year tonnage for base's configuration.
// base.Price and base.Probability are ignored. Every cell is reported: cells
// with no route, or whose substituted schedule ships nothing over the whole
// horizon, come back with Reachable false and zero profits.
func Sensitivity(ctx context.Context, p *scenario.Pipeline, base scenario.Case, axis PriceAxis, opts ...Option) (Table, error) {
	cfg := buildOptions(opts)
	prices, err := axis.Values()
	if err != nil {
		return Table{}, err
	}
	sched := p.Schedule()
	tons := sched.DistinctTons()

	t := Table{
		Key:    base.Key(),
		Prices: prices,
		Tons:   tons,
		Rows:   make([]Row, len(prices)*len(tons)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for ti, tn := range tons {
		for pi, price := range prices {
			slot := ti*len(prices) + pi
			g.Go(func() error {
				c := base
				c.Price, c.Probability = price, 1
				row := Row{Price: price, Tons: tn}
				out, err := p.EvaluateWith(gctx, c, sched.WithFirstYearTons(tn))
				switch {
				case errors.Is(err, scenario.ErrUnreachable):
					cfg.Logger.Info("sensitivity cell unreachable", "key", c.Key().String(), "price", price, "tons", tn)
				case errors.Is(err, scenario.ErrEmptyHorizon):
					cfg.Logger.Info("sensitivity cell ships nothing", "key", c.Key().String(), "price", price, "tons", tn)
				case err != nil:
					return err
				default:
					row.Reachable = true
					row.SingleYearProfit = out.Projection.FirstYearNet()
					row.NPV = out.Projection.NPV
				}
				t.Rows[slot] = row
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Table{}, err
	}

	return t, nil
}
