package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-medication-sync/internal/observability"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "medication-sync",
		Short:         "Keeps local medicine alerts in step with the backend schedule",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(Version)
		},
	}
}

// withObservability initializes logging and telemetry for the duration of fn.
func withObservability(ctx context.Context, fn func(ctx context.Context) error) error {
	obs, err := initObservability(ctx)
	if err != nil {
		return err
	}
	defer shutdownObservability(obs)

	slog.SetDefault(obs.Logger())

	return fn(ctx)
}

func shutdownObservability(obs *observability.Resources) {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := obs.Shutdown(shutdownCtx); err != nil {
		slog.Warn("observability shutdown error", slog.String("error", err.Error()))
	}
}
