package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sportdeets/load-tests/internal/scenario"
)

func newScenariosCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDURATION\tPEAK VUS\tPURPOSE")

			for _, name := range a.scenarios.Names() {
				s, err := a.scenario(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Name, scenario.FormatDuration(s.TotalDuration()), s.PeakTarget(), s.Purpose)
				if verbose {
					for _, st := range s.Stages {
						fmt.Fprintf(tw, "\t%s\t\t\n", st)
					}
				}
			}

			return tw.Flush()
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print every stage")

	return cmd
}
