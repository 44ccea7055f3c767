package repository

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ persistence.UserLockRepository = (*UserLockRepository)(nil)

// UserLockRepository implements user locking functionality using GORM
type UserLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserLockRepository creates a new UserLockRepository instance
func NewUserLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserLockRepository {
	return &UserLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock takes the lock on userID for duration under a fresh owner
// token. An expired lock is taken over; a live one makes the upsert a no-op
// and yields ErrUserLocked.
func (r *UserLockRepository) AcquireLock(ctx context.Context, userID uint64, duration time.Duration) (string, error) {
	r.logger.Debug("Attempting to acquire lock", map[string]any{
		"user_id":  userID,
		"duration": duration.String(),
	})

	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)
	owner := uuid.NewString()

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO user_locks (user_id, owner, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET owner = excluded.owner,
		    locked_at = excluded.locked_at,
		    expires_at = excluded.expires_at,
		    updated_at = excluded.updated_at
		WHERE user_locks.expires_at <= ?`,
		userID, owner, now, expiresAt, now, now,
		now,
	)

	if err := result.Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) || r.errorClassifier.IsLockError(err) {
			r.logger.Warn("User is already locked", map[string]any{
				"user_id": userID,
			})
			return "", errs.ErrUserLocked
		}

		if isContextError(err) {
			r.logger.Warn("Context timeout acquiring lock", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			return "", fmt.Errorf("lock acquisition timeout: %w", err)
		}

		r.logger.Error("Database error acquiring lock", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return "", fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User is already locked", map[string]any{
			"user_id": userID,
		})
		return "", errs.ErrUserLocked
	}

	r.logger.Debug("Lock acquired", map[string]any{
		"user_id":    userID,
		"expires_at": expiresAt,
	})
	return owner, nil
}

// ReleaseLock drops the lock held by owner. A lock that is missing or was
// taken over by another owner after expiring is left alone.
func (r *UserLockRepository) ReleaseLock(ctx context.Context, userID uint64, owner string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND owner = ?", userID, owner).
		Delete(&model.UserLock{})

	// The lock expires on its own if the delete is cut short
	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context timeout when releasing lock, lock will expire automatically", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil
	}

	if result.Error != nil {
		r.logger.Error("Failed to release lock", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No lock found to release - may have expired or been taken over", map[string]any{
			"user_id": userID,
		})
	}
	return nil
}

// CleanupExpiredLocks removes all expired locks and returns how many were removed
func (r *UserLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.UserLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Expired locks cleanup completed", map[string]any{
		"locks_removed": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
