package main

import (
	"fmt"

	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/database/migration"
	"github.com/spf13/cobra"
)

var seedFlag bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and optionally seed the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		manager, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer manager.Close()

		migrations, err := manager.MigrationManager()
		if err != nil {
			return err
		}
		version, err := migrations.GetCurrentVersion(ctx)
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}

		if seedFlag || cfg.Database.SeedCatalog {
			if err := migration.SeedCatalog(ctx, manager.DB(), appLogger, timeProvider); err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
		}

		appLogger.Info("Database is up to date", map[string]any{"version": version})
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&seedFlag, "seed", false, "insert the starter challenges and products into empty tables")
	rootCmd.AddCommand(migrateCmd)
}
