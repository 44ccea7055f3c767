package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// RedemptionIntentRepository is the write-ahead log of compensating redemptions
type RedemptionIntentRepository interface {
	// Create stores a new intent
	//
	// Possible errors:
	// - ErrDuplicate: If an intent with the same ID exists
	Create(ctx context.Context, intent *entity.RedemptionIntent) error

	// Update saves status and produced IDs
	Update(ctx context.Context, intent *entity.RedemptionIntent) error

	// GetByID retrieves an intent
	//
	// Possible errors:
	// - ErrIntentNotFound: If the intent doesn't exist
	GetByID(ctx context.Context, id string) (*entity.RedemptionIntent, error)

	// ListStale returns started or rollback_failed intents last updated before cutoff
	ListStale(ctx context.Context, cutoff time.Time, limit int) ([]*entity.RedemptionIntent, error)
}
