package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEnvCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Resolve and print the target environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list {
				_, err := fmt.Fprintln(out, strings.Join(a.resolver.Names(), "\n"))
				return err
			}

			env, err := a.environment()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(env)
			}

			_, err = fmt.Fprintf(out, "Environment: %s\nBase URL:    %s\nDescription: %s\n",
				a.cfg.Environment, env.BaseURL, env.Description)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the environment as JSON")
	cmd.Flags().BoolVar(&list, "list", false, "list the known environments")

	return cmd
}
