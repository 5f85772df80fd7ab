package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sportdeets/load-tests/config"
	"github.com/sportdeets/load-tests/internal/environment"
	"github.com/sportdeets/load-tests/internal/scenario"
	"github.com/sportdeets/load-tests/pkg/logger"
)

// app carries what every command needs once flags are parsed.
type app struct {
	fs          afero.Fs
	envOverride string

	cfg       *config.Config
	log       *slog.Logger
	resolver  environment.Resolver
	scenarios *scenario.Registry
}

func newRootCmd(version string, fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	cmd := &cobra.Command{
		Use:           "loadtests",
		Short:         "Load test definitions for the sportdeets API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.envOverride, "environment", "e", "", "target environment, overrides ENVIRONMENT")

	cmd.AddCommand(newEnvCmd(a))
	cmd.AddCommand(newScenariosCmd(a))
	cmd.AddCommand(newPlanCmd(a))
	cmd.AddCommand(newProbeCmd(a))
	cmd.AddCommand(newSummaryCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	if a.envOverride != "" {
		cfg.Environment = a.envOverride
	}

	resolver, err := environment.New(cfg.Resolver.Mode, a.fs, cfg.Resolver.Dir)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.resolver = resolver
	a.scenarios = scenario.Builtin()
	a.log = logger.New(cmd.ErrOrStderr(), cfg.Logging.Level, false, cfg.Logging.Format).
		With(slog.String("environment", cfg.Environment))

	return nil
}

// environment resolves the configured environment. A run cannot proceed
// without it.
func (a *app) environment() (environment.Config, error) {
	env, err := a.resolver.Resolve(a.cfg.Environment)
	if err != nil {
		a.log.Error("Failed to resolve environment", slog.String("error", err.Error()))
		return environment.Config{}, err
	}

	a.log.Info("Resolved environment",
		slog.String("base_url", env.BaseURL),
		slog.String("description", env.Description))

	return env, nil
}

func (a *app) scenario(name string) (scenario.Scenario, error) {
	return a.scenarios.Get(name)
}
