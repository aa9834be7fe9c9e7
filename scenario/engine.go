package scenario

import (
	"context"
	"errors"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/haulroute/transport"
)

// Result is the outcome of an Engine run.
type Result struct {
	// Ranking lists every reachable configuration by expected value.
	Ranking []Ranked `json:"ranking"`
	// Winner is Ranking[0].
	Winner Ranked `json:"winner"`
	// WinnerCase is the winning configuration priced at the distribution's
	// mean, for cash-flow reporting.
	WinnerCase Case `json:"winner_case"`
	// Unreachable lists cases with no route, sorted by key then price.
	Unreachable []Case `json:"unreachable"`
	// Evaluated counts cases that produced an outcome.
	Evaluated int `json:"evaluated"`
}

// Engine enumerates and evaluates the cross product of its inputs.
type Engine struct {
	pipeline *Pipeline
	prices   []PriceScenario
	ports    []Port
	modes    []transport.Mode
	risks    []transport.RiskOption
	opts     Options
}

// NewEngine returns an Engine. Nil or empty modes default to every mode.
func NewEngine(p *Pipeline, prices []PriceScenario, ports []Port, modes []transport.Mode, risks []transport.RiskOption, opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(modes) == 0 {
		modes = transport.Modes()
	}

	return &Engine{
		pipeline: p,
		prices:   slices.Clone(prices),
		ports:    slices.Clone(ports),
		modes:    slices.Clone(modes),
		risks:    slices.Clone(risks),
		opts:     cfg,
	}
}

// Cases enumerates price × port × mode × risk in that nesting order.
func (e *Engine) Cases() []Case {
	out := make([]Case, 0, len(e.prices)*len(e.ports)*len(e.modes)*len(e.risks))
	for _, pr := range e.prices {
		for _, port := range e.ports {
			for _, m := range e.modes {
				for _, r := range e.risks {
					out = append(out, Case{
						Mode:        m,
						Port:        port,
						Risk:        r,
						Price:       pr.Price,
						Probability: pr.Probability,
					})
				}
			}
		}
	}

	return out
}

// MeanPrice returns the probability-weighted mean price.
func (e *Engine) MeanPrice() float64 {
	return MeanPrice(e.prices)
}

// MeanPrice returns Σ price × probability.
func MeanPrice(prices []PriceScenario) float64 {
	var m float64
	for _, p := range prices {
		m += p.Price * p.Probability
	}

	return m
}

// Run evaluates every case concurrently and selects the winner.
// Unreachable cases are collected, not returned as errors. Any other error
// cancels the run. The price distribution is checked with ValidatePrices
// before anything is evaluated.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	cases := e.Cases()
	if len(cases) == 0 {
		return Result{}, ErrNoCases
	}
	if err := ValidatePrices(e.prices); err != nil {
		return Result{}, err
	}
	if e.opts.Order != nil {
		e.opts.Order(cases)
	}

	acc := NewAccumulator()
	log := e.opts.Logger

	var (
		mu          sync.Mutex
		unreachable []Case
		evaluated   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for _, c := range cases {
		g.Go(func() error {
			out, err := e.pipeline.Evaluate(gctx, c)
			if errors.Is(err, ErrUnreachable) {
				log.Info("no route", "mode", c.Mode.String(), "port", c.Port.Name, "risk", c.Risk.Name, "price", c.Price)
				mu.Lock()
				unreachable = append(unreachable, c)
				mu.Unlock()
				return nil
			}
			if err != nil {
				return err
			}
			log.Debug("evaluated", "key", c.Key().String(), "price", c.Price, "npv", out.Profit(), "cost_per_ton", out.CostPerTon)
			acc.Add(c.Key(), out.Profit(), c.Probability)
			mu.Lock()
			evaluated++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	slices.SortFunc(unreachable, compareCases)
	res := Result{
		Ranking:     acc.Ranking(),
		Unreachable: unreachable,
		Evaluated:   evaluated,
	}
	if len(res.Ranking) == 0 {
		return res, ErrNoWinner
	}
	res.Winner = res.Ranking[0]
	res.WinnerCase = e.caseFor(res.Winner.Key)
	log.Info("winner selected", "key", res.Winner.Key.String(), "ev", res.Winner.EV,
		"evaluated", evaluated, "unreachable", len(unreachable))

	return res, nil
}

// caseFor rebuilds the winning case at the mean price with probability 1.
func (e *Engine) caseFor(k Key) Case {
	c := Case{Mode: k.Mode, Price: e.MeanPrice(), Probability: 1}
	for _, p := range e.ports {
		if p.Name == k.Port {
			c.Port = p
			break
		}
	}
	for _, r := range e.risks {
		if r.Name == k.Risk {
			c.Risk = r
			break
		}
	}

	return c
}

// compareCases orders cases by key, then price.
func compareCases(a, b Case) int {
	ka, kb := a.Key(), b.Key()
	switch {
	case ka.Less(kb):
		return -1
	case kb.Less(ka):
		return 1
	case a.Price < b.Price:
		return -1
	case a.Price > b.Price:
		return 1
	}

	return 0
}
