package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPassengersCmd(a *app) *cobra.Command {
	var prefix, namesPath string

	cmd := &cobra.Command{
		Use:   "passengers",
		Short: "Search passengers by name prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, system, err := a.loadNetwork(namesPath)
			if err != nil {
				return err
			}

			for _, name := range system.SearchForPassengers(prefix) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "name prefix, case insensitive (empty lists everyone)")
	cmd.Flags().StringVar(&namesPath, "names", "", "extra file with one passenger name per line")
	return cmd
}
