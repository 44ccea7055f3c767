package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// LedgerRepository stores immutable point movements. There is no Update.
type LedgerRepository interface {
	// Create stores an entry and assigns its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If the user or challenge reference is dangling
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// Delete removes an entry; used only by compensation and administration
	//
	// Possible errors:
	// - ErrLedgerEntryNotFound: If the entry is already gone
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error

	// GetByID retrieves one entry
	//
	// Possible errors:
	// - ErrLedgerEntryNotFound: If the entry doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.LedgerEntry, error)

	// FindByUser returns all entries of a user, oldest first
	FindByUser(ctx context.Context, userID uint64) ([]*entity.LedgerEntry, error)

	// FindByUsers returns the entries of all given users in a single query.
	// An empty userIDs slice means every user.
	FindByUsers(ctx context.Context, userIDs []uint64) ([]*entity.LedgerEntry, error)
}
