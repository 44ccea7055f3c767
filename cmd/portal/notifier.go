package main

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/mailer"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/messaging"
	"github.com/spf13/cobra"
)

var notifierCmd = &cobra.Command{
	Use:   "notifier",
	Short: "Consume redemption notices and email the members",
	RunE: func(cmd *cobra.Command, args []string) error {
		mailgun, err := mailer.NewMailgun(mailer.Options{
			Domain:  cfg.Mailgun.Domain,
			APIKey:  cfg.Mailgun.APIKey,
			Sender:  cfg.Mailgun.Sender,
			APIBase: cfg.Mailgun.APIBase,
		}, appLogger)
		if err != nil {
			return err
		}

		client, err := messaging.NewClient(messaging.Options{
			URL:           cfg.RabbitMQ.URL,
			Queue:         cfg.RabbitMQ.Queue,
			PrefetchCount: 10,
		}, appLogger, timeProvider)
		if err != nil {
			return err
		}
		defer client.Close()

		worker := messaging.NewRedemptionWorker(mailer.NewRedemptionMailer(mailgun, appLogger), appLogger)

		appLogger.Info("Notifier started", map[string]any{"queue": cfg.RabbitMQ.Queue})
		if err := client.Consume(cmd.Context(), worker.Handle); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		appLogger.Info("Notifier stopped", nil)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notifierCmd)
}
