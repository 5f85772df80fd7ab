package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sportdeets/load-tests/internal/summary"
)

func newSummaryCmd(a *app) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "summary <scenario>",
		Short: "Print the engine's end-of-test summary for a scenario",
		Long: "Reads the JSON summary exported by the load-testing engine, prints the\n" +
			"scenario's report lines followed by the raw JSON and, for scenarios that\n" +
			"keep results, stores a timestamped copy in the results directory.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scenario(args[0])
			if err != nil {
				return err
			}

			env, err := a.environment()
			if err != nil {
				return err
			}

			data, err := readInput(a.fs, cmd.InOrStdin(), input)
			if err != nil {
				return fmt.Errorf("reading summary: %w", err)
			}

			writer := summary.NewWriter(a.fs, a.cfg.Results.Dir)
			sum, err := writer.Write(cmd.OutOrStdout(), s, env, data)
			if err != nil {
				return err
			}

			if failed := sum.FailedThresholds(); len(failed) > 0 {
				a.log.Warn("Thresholds failed",
					slog.String("scenario", s.Name),
					slog.String("thresholds", strings.Join(failed, "; ")))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "summary JSON file, - for stdin")

	return cmd
}

func readInput(fs afero.Fs, stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return afero.ReadFile(fs, path)
}
