package cache

import (
	"context"
	"time"
)

// Keys of the cached views
const (
	KeyLeaderboard = "view:leaderboard"
	KeyGiftShop    = "view:giftshop"
)

// ViewCache holds short-lived renderings of aggregated views
type ViewCache interface {
	// GetJSON decodes the cached value into dest and reports whether it was present
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}
