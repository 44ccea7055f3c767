package main

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/notification"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/usecase/discussion"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/usecase/leaderboard"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/usecase/points"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/usecase/redemption"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/usecase/user"
	viewcache "github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/messaging"
)

// application holds the connections and services a subcommand runs against
type application struct {
	db        *database.Manager
	repos     *database.Repositories
	viewCache cache.ViewCache
	notifier  notification.Notifier

	users       *user.UserUseCase
	points      *points.Service
	leaderboard *leaderboard.Service
	discussions *discussion.Service
	redemption  *redemption.Service

	closers []func() error
}

// openDatabase connects and migrates the configured database
func openDatabase(ctx context.Context) (*database.Manager, error) {
	manager := database.NewManager(database.CreateConfigFromAppConfig(cfg), appLogger, timeProvider)
	if _, err := manager.Connect(ctx); err != nil {
		return nil, err
	}

	migrations, err := manager.MigrationManager()
	if err != nil {
		_ = manager.Close()
		return nil, err
	}
	if err := migrations.MigrateAll(ctx); err != nil {
		_ = manager.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return manager, nil
}

// newApplication wires the use cases. Redis and RabbitMQ are optional and
// fall back to no-op adapters when disabled.
func newApplication(ctx context.Context) (*application, error) {
	manager, err := openDatabase(ctx)
	if err != nil {
		return nil, err
	}

	app := &application{
		db:    manager,
		repos: manager.Repositories(),
	}
	app.closers = append(app.closers, manager.Close)

	app.viewCache = viewcache.NoopViewCache{}
	if cfg.Redis.Enabled {
		redisCache := viewcache.NewRedisViewCache(viewcache.NewRedisClient(viewcache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), viewcache.DefaultKeyPrefix, appLogger)
		if err := redisCache.Ping(ctx); err != nil {
			appLogger.Warn("Redis unavailable, cached views will be rebuilt on every read", map[string]any{
				"addr":  cfg.Redis.Addr,
				"error": err.Error(),
			})
		}
		app.viewCache = redisCache
		app.closers = append(app.closers, redisCache.Close)
	}

	app.notifier = messaging.NewNoopNotifier(appLogger)
	if cfg.RabbitMQ.Enabled {
		client, err := messaging.NewClient(messaging.Options{
			URL:   cfg.RabbitMQ.URL,
			Queue: cfg.RabbitMQ.Queue,
		}, appLogger, timeProvider)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.notifier = messaging.NewQueueNotifier(client, appLogger)
		app.closers = append(app.closers, client.Close)
	}

	repos := app.repos
	app.users = user.NewUserUseCase(repos.Users, timeProvider, appLogger)
	app.points = points.NewService(repos.Users, repos.Ledger, repos.Comments, repos.Challenges, app.viewCache, timeProvider, appLogger).
		WithReadTimeout(cfg.Database.QueryTimeout)
	app.leaderboard = leaderboard.NewService(repos.Users, app.points, app.viewCache, cfg.Cache.LeaderboardTTL, appLogger)
	app.discussions = discussion.NewService(repos.DiscussionPosts, repos.Comments, app.viewCache, timeProvider, appLogger)
	app.redemption = redemption.NewService(redemption.Dependencies{
		UnitOfWork:   manager.CreateUnitOfWork(),
		Users:        repos.Users,
		Ledger:       repos.Ledger,
		Transactions: repos.Transactions,
		Products:     repos.Products,
		Intents:      repos.Intents,
		Locks:        repos.Locks,
		ViewCache:    app.viewCache,
		Notifier:     app.notifier,
		TimeProvider: timeProvider,
		Logger:       appLogger,
	}, redemptionConfig())

	return app, nil
}

func redemptionConfig() redemption.Config {
	conf := redemption.DefaultConfig()
	conf.Mode = redemption.ParseMode(cfg.Redemption.Mode)
	conf.SerializePerUser = cfg.Redemption.SerializePerUser
	if cfg.Redemption.LockTimeout > 0 {
		conf.LockTimeout = cfg.Redemption.LockTimeout
	}
	if cfg.Cache.GiftShopTTL > 0 {
		conf.GiftShopCacheTTL = cfg.Cache.GiftShopTTL
	}
	if cfg.Redemption.RecoveryBatchSize > 0 {
		conf.RecoveryBatchSize = cfg.Redemption.RecoveryBatchSize
	}
	if cfg.Redemption.MaxRetries > 0 {
		conf.Retry.MaxRetries = cfg.Redemption.MaxRetries
	}
	return conf
}

// Close releases every connection in reverse order of opening
func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			appLogger.Warn("Failed to close resource", map[string]any{"error": err.Error()})
		}
	}
	a.closers = nil
}

func shutdownContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
