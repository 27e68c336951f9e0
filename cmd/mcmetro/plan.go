package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Best cycle-free set of tracks connecting every building",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, system, err := a.loadNetwork("")
			if err != nil {
				return err
			}

			subset := system.BestMetroSystemDetail()
			out := cmd.OutOrStdout()
			for _, id := range subset.GetTrackIDs() {
				fmt.Fprintln(out, id)
			}
			fmt.Fprintf(out, "tracks: %d, capacity: %d, cost: %d, components: %d\n",
				len(subset.GetTrackIDs()), subset.GetTotalCapacity(), subset.GetTotalCost(), subset.GetComponents())
			return nil
		},
	}
}
