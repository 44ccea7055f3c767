package redemption

import (
	"context"
	"math/rand/v2"
	"time"

	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
)

// RetryConfig holds configuration for retrying compensating writes
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    4,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// retryOnTransientError runs op until it succeeds, fails permanently or
// the attempts run out
func (s *Service) retryOnTransientError(ctx context.Context, operation string, op func() error) error {
	cfg := s.config.Retry
	var err error

	for attempt := 0; attempt < cfg.MaxRetries; attempt++ {
		err = op()
		if err == nil || !errs.IsTransientError(err) {
			return err
		}
		if attempt == cfg.MaxRetries-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, cfg)
		s.Logger.Warn("Transient error, retrying", map[string]any{
			"operation":   operation,
			"attempt":     attempt + 1,
			"max_retries": cfg.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		if sleepErr := s.TimeProvider.Sleep(ctx, backoff); sleepErr != nil {
			return sleepErr
		}
	}

	s.Logger.Error("All retry attempts failed", map[string]any{
		"operation":   operation,
		"max_retries": cfg.MaxRetries,
		"error":       err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes interval * 2^attempt, capped, plus jitter
func calculateBackoffWithJitter(attempt int, cfg RetryConfig) time.Duration {
	backoff := cfg.RetryInterval * (1 << uint(attempt))
	if backoff > cfg.MaxInterval || backoff <= 0 {
		backoff = cfg.MaxInterval
	}

	if cfg.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * cfg.JitterFactor * rand.Float64())
	}
	return backoff
}
