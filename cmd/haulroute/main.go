// Command haulroute evaluates bulk-material transport options over a
// terrain grid and ranks them by expected multi-year profit.
//
//	haulroute evaluate territory.yaml
//	haulroute route territory.yaml --mode diesel_train --port north
//	haulroute montecarlo territory.yaml --trials 50000 --seed 7 --json
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:          "haulroute",
		Short:        "Transport logistics evaluation over a terrain grid",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	a.bindFlags(rootCmd)

	rootCmd.AddCommand(evaluateCmd(a))
	rootCmd.AddCommand(sensitivityCmd(a))
	rootCmd.AddCommand(monteCarloCmd(a))
	rootCmd.AddCommand(routeCmd(a))
	rootCmd.AddCommand(validateCmd(a))

	return rootCmd
}
