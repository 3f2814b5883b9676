package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"knockoutsim/internal"
	"knockoutsim/roster"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the roster can be simulated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := roster.Load(root.rosterPath)
			if err != nil {
				return err
			}
			if err := internal.ValidateGroups(groups); err != nil {
				return err
			}

			numTeams := 0
			for _, g := range groups {
				numTeams += len(g.Teams)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d groups, %d teams, %d qualifiers\n",
				root.rosterPath, len(groups), numTeams, internal.QualifyingPlaces*len(groups)-1)
			return nil
		},
	}
}
