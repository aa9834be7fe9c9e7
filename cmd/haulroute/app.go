package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/haulroute/config"
	"github.com/katalvlaran/haulroute/explore"
	"github.com/katalvlaran/haulroute/report"
	"github.com/katalvlaran/haulroute/scenario"
)

// app carries global flags and the logger shared by every subcommand.
type app struct {
	jsonOut  bool
	workers  int
	trials   int
	seed     uint64
	logLevel string

	seedSet bool
	logger  *slog.Logger
}

func (a *app) bindFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.BoolVar(&a.jsonOut, "json", false, "write the report as JSON")
	pf.IntVar(&a.workers, "workers", 0, "concurrent evaluations (0 = config or GOMAXPROCS)")
	pf.IntVar(&a.trials, "trials", 0, "Monte Carlo trials (0 = config)")
	pf.Uint64Var(&a.seed, "seed", 0, "Monte Carlo seed (overrides config when set)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "debug, info, warn or error")
}

func (a *app) setup(cmd *cobra.Command) error {
	a.seedSet = cmd.Flags().Changed("seed")
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(a.logLevel))); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	return nil
}

// load reads, validates and materializes path, then applies flag overrides.
func (a *app) load(path string) (*config.Scenario, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	s, err := cfg.Materialize()
	if err != nil {
		return nil, err
	}
	if a.workers > 0 {
		s.Analysis.Workers = a.workers
	}
	if a.trials > 0 {
		s.Analysis.Trials = a.trials
	}
	if a.seedSet {
		s.Analysis.Seed = a.seed
	}
	if s.Analysis.Trials == 0 {
		s.Analysis.Trials = explore.DefaultTrials
	}
	a.logger.Debug("config loaded", "path", path, "regions", len(s.Grid.Regions()), "ports", len(s.Ports), "prices", len(s.Prices))

	return s, nil
}

func (a *app) engineOptions(s *config.Scenario) []scenario.Option {
	opts := []scenario.Option{scenario.WithLogger(a.logger)}
	if s.Analysis.Workers > 0 {
		opts = append(opts, scenario.WithWorkers(s.Analysis.Workers))
	}

	return opts
}

func (a *app) exploreOptions(s *config.Scenario) []explore.Option {
	opts := []explore.Option{explore.WithLogger(a.logger)}
	if s.Analysis.Workers > 0 {
		opts = append(opts, explore.WithWorkers(s.Analysis.Workers))
	}

	return opts
}

func (a *app) newDocument(source string) *report.Document {
	return report.New(source, time.Now())
}

func (a *app) write(w io.Writer, d *report.Document) error {
	if a.jsonOut {
		return report.WriteJSON(w, d)
	}

	return report.WriteText(w, d)
}
