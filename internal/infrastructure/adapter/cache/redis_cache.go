package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	portcache "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

var _ portcache.ViewCache = (*RedisViewCache)(nil)

// DefaultKeyPrefix namespaces the portal keys in a shared Redis
const DefaultKeyPrefix = "fanattics:"

// RedisOptions configures the Redis connection
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisViewCache stores rendered views as JSON strings in Redis
type RedisViewCache struct {
	client *redis.Client
	prefix string
	logger coreport.Logger
}

// NewRedisClient initializes a redis client
func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// NewRedisViewCache wraps client. An empty prefix selects DefaultKeyPrefix.
func NewRedisViewCache(client *redis.Client, prefix string, logger coreport.Logger) *RedisViewCache {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisViewCache{client: client, prefix: prefix, logger: logger}
}

func (c *RedisViewCache) key(name string) string {
	return c.prefix + name
}

// GetJSON decodes the cached value into dest and reports whether it was present
func (c *RedisViewCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// A value written by an older release is dropped instead of served
		c.logger.Warn("Discarding undecodable cache entry", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		_ = c.client.Del(ctx, c.key(key)).Err()
		return false, nil
	}
	return true, nil
}

// SetJSON stores value under key for ttl
func (c *RedisViewCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.key(key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Invalidate deletes keys; missing keys are ignored
func (c *RedisViewCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	c.logger.Debug("Cache invalidated", map[string]any{"keys": keys})
	return nil
}

// Ping checks the Redis connection
func (c *RedisViewCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the client
func (c *RedisViewCache) Close() error {
	return c.client.Close()
}
