package main

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/mcmetro/pkg/datastructure"
	"github.com/spf13/cobra"
)

func newFlowCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Maximum number of passengers from one building to another",
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" || to == "" {
				return errors.New("both --from and --to are required")
			}
			_, system, err := a.loadNetwork("")
			if err != nil {
				return err
			}

			res := system.MaxPassengersDetail(datastructure.BuildingID(from), datastructure.BuildingID(to))
			fmt.Fprintf(cmd.OutOrStdout(), "max passengers %s -> %s: %d\n", from, to, res.GetMaxFlow())
			fmt.Fprintf(cmd.OutOrStdout(), "augmenting paths: %d\n", res.GetAugmentingPaths())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source building id")
	cmd.Flags().StringVar(&to, "to", "", "destination building id")
	return cmd
}
