package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/database/migration"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portal HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		if err := routes.RegisterValidators(); err != nil {
			return err
		}

		app, err := newApplication(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		if cfg.Database.SeedCatalog {
			if err := migration.SeedCatalog(ctx, app.db.DB(), appLogger, timeProvider); err != nil {
				appLogger.Error("Failed to seed catalog", map[string]any{"error": err.Error()})
			}
		}

		verifier, err := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, timeProvider)
		if err != nil {
			return fmt.Errorf("token verifier: %w", err)
		}

		router := gin.New()
		routes.SetupMiddlewares(router, appLogger, timeProvider, cfg.Server.AllowedOrigins)
		routes.SetupRoutes(router, routes.Handlers{
			Health:    handler.NewHealthHandler(app.db, appLogger),
			User:      handler.NewUserHandler(app.users, app.points, appLogger),
			Community: handler.NewCommunityHandler(app.leaderboard, app.points, app.discussions, appLogger),
			GiftShop:  handler.NewGiftShopHandler(app.redemption, appLogger),
		}, routes.Security{
			Verifier:    verifier,
			Users:       app.users,
			CookieName:  cfg.Auth.CookieName,
			AdminEmails: cfg.Auth.AdminEmails,
		}, appLogger)

		server := &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:           router,
			ReadTimeout:       cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
		}

		serverErr := make(chan error, 1)
		go func() {
			appLogger.Info("Starting server", map[string]any{
				"addr":            server.Addr,
				"env":             cfg.Environment,
				"redemption_mode": cfg.Redemption.Mode,
			})
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case err := <-serverErr:
			if err != nil {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := shutdownContext(cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{
				"error": err.Error(),
			})
		}

		appLogger.Info("Server exited gracefully", nil)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
