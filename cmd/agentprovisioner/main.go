package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/habiliai/agentprovisioner/config"
	"github.com/habiliai/agentprovisioner/internal/mylog"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := execute(ctx, newCmd(), newLogger()); err != nil {
		os.Exit(1)
	}
}

func execute(ctx context.Context, cmd *cobra.Command, logger *slog.Logger) error {
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Error("agentprovisioner failed", "err", err)
		return err
	}
	return nil
}

func newLogger() *slog.Logger {
	p, err := config.NewEnvProvider(".env")
	if err != nil {
		return mylog.NewLoggerFromConfig(config.NewLogConfig())
	}
	return mylog.NewLoggerFromConfig(config.ResolveLogConfig(p))
}
