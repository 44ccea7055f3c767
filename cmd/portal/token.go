package main

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/auth"
	"github.com/spf13/cobra"
)

var (
	tokenEmail string
	tokenName  string
	tokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token <subject>",
	Short: "Sign a session token for local testing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.IsProduction() {
			return fmt.Errorf("token signing is disabled in production")
		}

		verifier, err := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, timeProvider)
		if err != nil {
			return err
		}

		token, err := verifier.Sign(usecase.Identity{
			Subject: args[0],
			Email:   tokenEmail,
			Name:    tokenName,
		}, tokenTTL)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "name claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
