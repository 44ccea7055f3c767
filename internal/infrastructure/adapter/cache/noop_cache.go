package cache

import (
	"context"
	"time"

	portcache "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
)

var _ portcache.ViewCache = NoopViewCache{}

// NoopViewCache always misses. Used when Redis is disabled.
type NoopViewCache struct{}

// GetJSON always reports a miss
func (NoopViewCache) GetJSON(context.Context, string, any) (bool, error) {
	return false, nil
}

// SetJSON discards the value
func (NoopViewCache) SetJSON(context.Context, string, any, time.Duration) error {
	return nil
}

// Invalidate does nothing
func (NoopViewCache) Invalidate(context.Context, ...string) error {
	return nil
}
