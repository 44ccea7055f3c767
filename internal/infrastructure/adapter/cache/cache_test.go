package cache

import (
	"context"
	"testing"
	"time"

	portcache "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopViewCache(t *testing.T) {
	ctx := context.Background()
	var c portcache.ViewCache = NoopViewCache{}

	require.NoError(t, c.SetJSON(ctx, portcache.KeyLeaderboard, []int{1, 2}, time.Minute))

	var dest []int
	hit, err := c.GetJSON(ctx, portcache.KeyLeaderboard, &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, dest)

	assert.NoError(t, c.Invalidate(ctx, portcache.KeyLeaderboard, portcache.KeyGiftShop))
}

func TestRedisViewCacheKeys(t *testing.T) {
	c := NewRedisViewCache(NewRedisClient(RedisOptions{Addr: "localhost:6379"}), "", logger.NewNoopLogger())
	defer c.Close()

	assert.Equal(t, "fanattics:view:leaderboard", c.key(portcache.KeyLeaderboard))

	custom := NewRedisViewCache(NewRedisClient(RedisOptions{Addr: "localhost:6379"}), "staging:", logger.NewNoopLogger())
	defer custom.Close()
	assert.Equal(t, "staging:view:giftshop", custom.key(portcache.KeyGiftShop))
}

func TestRedisViewCacheUnavailable(t *testing.T) {
	// Nothing listens on port 1
	c := NewRedisViewCache(NewRedisClient(RedisOptions{Addr: "127.0.0.1:1"}), "", logger.NewNoopLogger())
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var dest []string
	hit, err := c.GetJSON(ctx, portcache.KeyGiftShop, &dest)
	assert.Error(t, err)
	assert.False(t, hit)

	assert.Error(t, c.SetJSON(ctx, portcache.KeyGiftShop, []string{"mug"}, time.Minute))
	assert.Error(t, c.Invalidate(ctx, portcache.KeyGiftShop))
	assert.NoError(t, c.Invalidate(ctx), "no keys is a no-op")
	assert.Error(t, c.Ping(ctx))
}
