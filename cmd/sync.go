package main

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-medication-sync/internal/service/reconcile"
)

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one reconciliation against the backend and print the outcome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withObservability(cmd.Context(), func(ctx context.Context) error {
				a, err := newApp(ctx)
				if err != nil {
					return err
				}
				defer a.Close()

				outcome, err := a.coordinator.Trigger(ctx, reconcile.ReasonManual)
				if outcome != nil {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if encErr := enc.Encode(outcome); encErr != nil {
						return errors.Join(err, encErr)
					}
				}
				return err
			})
		},
	}
}
