package main

import (
	"time"

	"github.com/spf13/cobra"
)

var recoverAge time.Duration

var recoverCmd = &cobra.Command{
	Use:   "recover-redemptions",
	Short: "Resolve redemptions left open by a crash and clear expired user locks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		app, err := newApplication(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		age := recoverAge
		if age <= 0 {
			age = cfg.Redemption.RecoveryAge
		}

		report, err := app.redemption.Recover(ctx, age)
		if err != nil {
			return err
		}

		removed, err := app.repos.Locks.CleanupExpiredLocks(ctx)
		if err != nil {
			return err
		}

		appLogger.Info("Recovery finished", map[string]any{
			"examined":      report.Examined,
			"completed":     report.Completed,
			"rolled_back":   report.RolledBack,
			"failed":        report.Failed,
			"locks_removed": removed,
		})
		return nil
	},
}

func init() {
	recoverCmd.Flags().DurationVar(&recoverAge, "older-than", 0, "only touch intents untouched for this long (defaults to redemption.recoveryAge)")
	rootCmd.AddCommand(recoverCmd)
}
