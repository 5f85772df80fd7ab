package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sportdeets/load-tests/internal/probe"
	"github.com/sportdeets/load-tests/internal/selector"
)

var errProbeFailed = errors.New("probe checks failed")

func newProbeCmd(a *app) *cobra.Command {
	var pauses bool

	cmd := &cobra.Command{
		Use:   "probe <scenario>",
		Short: "Run one iteration of a scenario and evaluate its checks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scenario(args[0])
			if err != nil {
				return err
			}

			env, err := a.environment()
			if err != nil {
				return err
			}

			var opts []probe.Option
			if pauses {
				opts = append(opts, probe.WithPauses())
			}

			prober := probe.New(selector.New(a.cfg.Selector.Mode, a.log), a.log, a.cfg.ProbeTimeout(), opts...)

			results, err := prober.Run(cmd.Context(), s, env)
			if err := printResults(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if err != nil {
				return fmt.Errorf("probing %s: %w", s.Name, err)
			}

			if !probe.AllPassed(results) {
				a.log.Warn("Probe found failing checks", slog.String("scenario", s.Name))
				return errProbeFailed
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&pauses, "pauses", false, "honour step pauses and think time")

	return cmd
}

func printResults(w io.Writer, results []probe.Result) error {
	for _, r := range results {
		mark := "✓"
		if !r.Passed {
			mark = "✗"
		}

		if r.Err != nil {
			if _, err := fmt.Fprintf(w, "%s %s GET %s error=%v\n", mark, r.Step, r.URL, r.Err); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s %s GET %s status=%d duration=%s\n", mark, r.Step, r.URL, r.Status, r.Duration); err != nil {
			return err
		}

		names := make([]string, 0, len(r.Checks))
		for name := range r.Checks {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			status := "pass"
			if !r.Checks[name] {
				status = "FAIL"
			}
			if _, err := fmt.Fprintf(w, "    %s: %s\n", status, name); err != nil {
				return err
			}
		}
	}

	return nil
}
