package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plan <scenario>",
		Short: "Print the engine options of a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scenario(args[0])
			if err != nil {
				return err
			}

			if _, err := a.environment(); err != nil {
				return err
			}

			options, err := s.Options(a.cfg.Environment)
			if err != nil {
				return fmt.Errorf("rendering options for %s: %w", s.Name, err)
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(options)
				return err
			}

			if err := a.fs.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return err
			}
			if err := afero.WriteFile(a.fs, output, options, 0644); err != nil {
				return fmt.Errorf("writing options to %s: %w", output, err)
			}

			a.log.Info("Wrote scenario options", slog.String("scenario", s.Name), slog.String("file", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the options to this file instead of stdout")

	return cmd
}
