package main

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"knockoutsim/basketball"
	"knockoutsim/internal"
	"knockoutsim/render"
	"knockoutsim/roster"
)

func newSimulateCmd(root *rootOptions) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate one tournament and print every stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := roster.Load(root.rosterPath)
			if err != nil {
				return err
			}

			runSeed := resolveSeed(seed)
			logger := root.logger.WithFields(logrus.Fields{
				"run":  uuid.NewString(),
				"seed": runSeed,
			})

			rng := rand.New(rand.NewSource(runSeed))
			tournament, err := internal.NewTournament(groups, basketball.NewSimulator(rng), rng, logger)
			if err != nil {
				return err
			}

			result, err := tournament.Run()
			if err != nil {
				return err
			}

			return render.Result(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")

	return cmd
}
