package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"knockoutsim/odds"
	"knockoutsim/render"
	"knockoutsim/roster"
)

func newOddsCmd(root *rootOptions) *cobra.Command {
	cfg := odds.Config{}

	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Estimate medal odds over many simulated tournaments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := roster.Load(root.rosterPath)
			if err != nil {
				return err
			}

			cfg.Seed = resolveSeed(cfg.Seed)
			logger := root.logger.WithField("run", uuid.NewString())

			result, err := odds.Simulate(cmd.Context(), groups, cfg, logger)
			if err != nil {
				return err
			}

			return render.Odds(cmd.OutOrStdout(), result)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Runs, "runs", 1000, "number of simulated tournaments")
	flags.IntVar(&cfg.Workers, "workers", 0, "parallel simulations, 0 uses all CPUs")
	flags.Int64Var(&cfg.Seed, "seed", 0, "random seed of the first run, 0 picks one from the clock")
	flags.BoolVar(&cfg.Verbose, "verbose", false, "log the stages of every simulated tournament")

	return cmd
}
