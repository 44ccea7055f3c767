package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFor(t *testing.T) {
	t.Run("Test environment file", func(t *testing.T) {
		cfg, err := LoadConfigFor(Test)
		require.NoError(t, err)

		assert.Equal(t, Test, cfg.Environment)
		assert.False(t, cfg.IsProduction())
		assert.Equal(t, 8081, cfg.Server.Port)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, "compensating", cfg.Redemption.Mode)
		assert.True(t, cfg.Redemption.SerializePerUser)
		assert.Equal(t, 5*time.Second, cfg.Redemption.LockTimeout)
		assert.Equal(t, time.Second, cfg.Cache.LeaderboardTTL)
		assert.Equal(t, []string{"admin@fanattics.test"}, cfg.Auth.AdminEmails)
	})

	t.Run("Defaults fill missing keys", func(t *testing.T) {
		cfg, err := LoadConfigFor(Test)
		require.NoError(t, err)

		assert.Equal(t, "redemption.notifications", cfg.RabbitMQ.Queue)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 15*time.Minute, cfg.Database.ConnMaxIdleTime)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("FP_DB_HOST", "db.internal")
		t.Setenv("FP_SERVER_PORT", "9090")
		t.Setenv("FP_DB_QUERY_TIMEOUT_SECONDS", "7")

		cfg, err := LoadConfigFor(Test)
		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 7*time.Second, cfg.Database.QueryTimeout)
	})

	t.Run("Invalid override fails validation", func(t *testing.T) {
		t.Setenv("FP_REDEMPTION_MODE", "eventually")

		_, err := LoadConfigFor(Test)
		assert.ErrorContains(t, err, "invalid redemption mode")
	})

	t.Run("Per-user lock is off in shipped profiles", func(t *testing.T) {
		t.Setenv("FP_JWT_SECRET", "test-secret")

		for _, env := range []string{Development, Production} {
			cfg, err := LoadConfigFor(env)
			require.NoError(t, err, env)
			assert.False(t, cfg.Redemption.SerializePerUser, env)
			assert.Equal(t, "atomic", cfg.Redemption.Mode, env)
		}
	})

	t.Run("Unknown environment uses defaults", func(t *testing.T) {
		cfg, err := LoadConfigFor("staging")
		require.NoError(t, err)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 300*time.Second, cfg.Cache.LeaderboardTTL)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: Development,
			Server:      ServerConfig{Port: 8080},
			Database:    DatabaseConfig{Driver: "postgres"},
			Redemption:  RedemptionConfig{Mode: "atomic"},
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Environment = Production
	assert.ErrorContains(t, cfg.Validate(), "jwtSecret")

	cfg.Auth.JWTSecret = "s3cret"
	assert.NoError(t, cfg.Validate())
}
