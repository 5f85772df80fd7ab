package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
)

var version = "0.0.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCmd(version, afero.NewOsFs())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("Load test command failed", slog.Any("err", err))
		cancel()
		os.Exit(1)
	}
}
