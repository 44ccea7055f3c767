package persistence

import (
	"context"
	"time"
)

// UserLockRepository provides expiring per-user locks
type UserLockRepository interface {
	// AcquireLock takes the lock on userID for duration and returns the
	// owner token that releases it
	//
	// Possible errors:
	// - ErrUserLocked: If another holder has an unexpired lock
	// - ErrDatabaseConnection: If database connection fails
	AcquireLock(ctx context.Context, userID uint64, duration time.Duration) (string, error)

	// ReleaseLock drops the lock if owner still holds it. Releasing a lock
	// that is missing or was taken over is not an error.
	ReleaseLock(ctx context.Context, userID uint64, owner string) error
}
