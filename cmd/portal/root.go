package main

import (
	"fmt"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var (
	envFlag string

	cfg          *config.Config
	appLogger    coreport.Logger
	timeProvider coreport.TimeProvider
)

// rootCmd loads the configuration and the logger shared by every subcommand
var rootCmd = &cobra.Command{
	Use:           "portal",
	Short:         "Fanattics community portal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if envFlag != "" {
			cfg, err = config.LoadConfigFor(envFlag)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		zapLogger, err := logger.NewZapLogger(logger.Options{
			Format:     cfg.Logger.Format,
			Level:      cfg.Logger.Level,
			Output:     cfg.Logger.Output,
			CallerInfo: cfg.Logger.CallerInfo,
		})
		if err != nil {
			return err
		}
		appLogger = zapLogger
		timeProvider = timeprovider.NewRealTimeProvider()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appLogger != nil {
			_ = appLogger.Flush()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "configuration environment (defaults to FP_ENV or development)")
}
