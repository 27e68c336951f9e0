package main

import (
	"fmt"

	"github.com/lintang-b-s/mcmetro/pkg/metro"
	"github.com/spf13/cobra"
)

func newCheckersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkers",
		Short: "Number of ticket checkers that can be hired from the schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			network, _, err := a.loadNetwork("")
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ticket checkers: %d\n", metro.HireTicketCheckers(network.Shifts()))
			return nil
		},
	}
}
