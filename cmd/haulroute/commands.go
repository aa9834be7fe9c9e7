package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/haulroute/config"
	"github.com/katalvlaran/haulroute/explore"
	"github.com/katalvlaran/haulroute/report"
	"github.com/katalvlaran/haulroute/scenario"
	"github.com/katalvlaran/haulroute/transport"
)

// selection names a fixed configuration; empty fields defer to the engine.
type selection struct {
	mode  string
	port  string
	risk  string
	price float64
}

func (sel *selection) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sel.mode, "mode", "", "transport mode (diesel_train, electric_train, diesel_truck, electric_truck)")
	cmd.Flags().StringVar(&sel.port, "port", "", "port name")
	cmd.Flags().StringVar(&sel.risk, "risk", "", "risk option name (default: first configured)")
	cmd.Flags().Float64Var(&sel.price, "price", 0, "commodity price (default: distribution mean)")
}

func (sel *selection) fixed() bool { return sel.mode != "" && sel.port != "" }

// resolve turns the flags into a case priced at sel.price or the mean.
func (sel *selection) resolve(s *config.Scenario) (scenario.Case, error) {
	mode, err := transport.ParseMode(sel.mode)
	if err != nil {
		return scenario.Case{}, err
	}
	port, err := s.Port(sel.port)
	if err != nil {
		return scenario.Case{}, err
	}
	risk := s.Risks[0]
	if sel.risk != "" {
		if risk, err = s.Risk(sel.risk); err != nil {
			return scenario.Case{}, err
		}
	}
	price := sel.price
	if price == 0 {
		price = scenario.MeanPrice(s.Prices)
	}

	return scenario.Case{Mode: mode, Port: port, Risk: risk, Price: price, Probability: 1}, nil
}

// choose returns the fixed case when flags name one, else the engine winner.
func (a *app) choose(ctx context.Context, s *config.Scenario, sel *selection, doc *report.Document) (scenario.Case, error) {
	if sel.fixed() {
		return sel.resolve(s)
	}
	e, err := s.Engine(a.engineOptions(s)...)
	if err != nil {
		return scenario.Case{}, err
	}
	res, err := e.Run(ctx)
	if err != nil {
		return scenario.Case{}, err
	}
	doc.SetRanking(res)
	a.logger.Info("winner", "key", res.Winner.Key.String(), "expected", res.Winner.EV, "evaluated", res.Evaluated, "unreachable", len(res.Unreachable))

	return res.WinnerCase, nil
}

func evaluateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate [config]",
		Short: "Rank every configuration, then stress the winner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			doc := a.newDocument(args[0])
			c, err := a.choose(ctx, s, &selection{}, doc)
			if err != nil {
				return err
			}
			if err := a.detail(ctx, s, c, doc); err != nil {
				return err
			}
			if err := a.sweep(ctx, s, c, doc); err != nil {
				return err
			}
			if err := a.simulate(ctx, s, c, doc); err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), doc)
		},
	}
}

func sensitivityCmd(a *app) *cobra.Command {
	sel := &selection{}
	cmd := &cobra.Command{
		Use:   "sensitivity [config]",
		Short: "Sweep price × first-year tonnage for one configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			doc := a.newDocument(args[0])
			c, err := a.choose(ctx, s, sel, doc)
			if err != nil {
				return err
			}
			if err := a.sweep(ctx, s, c, doc); err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), doc)
		},
	}
	sel.bind(cmd)

	return cmd
}

func monteCarloCmd(a *app) *cobra.Command {
	sel := &selection{}
	cmd := &cobra.Command{
		Use:   "montecarlo [config]",
		Short: "Simulate one configuration over random price draws",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			doc := a.newDocument(args[0])
			c, err := a.choose(ctx, s, sel, doc)
			if err != nil {
				return err
			}
			if err := a.simulate(ctx, s, c, doc); err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), doc)
		},
	}
	sel.bind(cmd)

	return cmd
}

func routeCmd(a *app) *cobra.Command {
	sel := &selection{}
	cmd := &cobra.Command{
		Use:   "route [config]",
		Short: "Evaluate a single configuration and show its route and cash flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			c, err := sel.resolve(s)
			if err != nil {
				return err
			}
			doc := a.newDocument(args[0])
			if err := a.detail(cmd.Context(), s, c, doc); err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), doc)
		},
	}
	sel.bind(cmd)
	_ = cmd.MarkFlagRequired("mode")
	_ = cmd.MarkFlagRequired("port")

	return cmd
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config]",
		Short: "Check a scenario file, list every problem and unreachable ports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return errors.New("configuration is invalid")
			}
			s, err := cfg.Materialize()
			if err != nil {
				return err
			}
			reach, err := s.Reachability()
			if err != nil {
				return err
			}
			for _, r := range reach {
				if !r.Reachable {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s cannot reach port %s\n", args[0], r.Mode, r.Port)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])

			return nil
		},
	}
}

// detail evaluates c once and records its route and cash flow.
func (a *app) detail(ctx context.Context, s *config.Scenario, c scenario.Case, doc *report.Document) error {
	p, err := s.Pipeline()
	if err != nil {
		return err
	}
	out, err := p.Evaluate(ctx, c)
	if err != nil {
		return err
	}
	doc.SetWinner(out)

	return nil
}

func (a *app) sweep(ctx context.Context, s *config.Scenario, c scenario.Case, doc *report.Document) error {
	p, err := s.Pipeline()
	if err != nil {
		return err
	}
	axis := explore.AxisFromDistribution(s.Prices, s.Analysis.PriceSteps)
	t, err := explore.Sensitivity(ctx, p, c, axis, a.exploreOptions(s)...)
	if err != nil {
		return err
	}
	doc.SetSensitivity(t)

	return nil
}

func (a *app) simulate(ctx context.Context, s *config.Scenario, c scenario.Case, doc *report.Document) error {
	p, err := s.Pipeline()
	if err != nil {
		return err
	}
	sum, err := explore.MonteCarlo(ctx, p, c, s.Prices, s.Analysis.Trials, s.Analysis.Seed, a.exploreOptions(s)...)
	if errors.Is(err, explore.ErrEmptySample) {
		a.logger.Warn("monte carlo: every trial unreachable", "key", c.Key().String())
	} else if err != nil {
		return err
	}
	doc.SetMonteCarlo(sum)

	return nil
}
