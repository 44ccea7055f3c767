package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// GiftShopTransactionRepository stores redemption fulfilment records
type GiftShopTransactionRepository interface {
	// Create stores a transaction and assigns its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If a reference is dangling
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, txn *entity.GiftShopTransaction) error

	// Delete removes a transaction; used only by compensation
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction is already gone
	Delete(ctx context.Context, id uint64) error

	// GetByID retrieves a transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.GiftShopTransaction, error)

	// Update saves status and shipping changes
	Update(ctx context.Context, txn *entity.GiftShopTransaction) error

	// ListByUser returns a user's transactions, newest first, with products populated
	ListByUser(ctx context.Context, userID uint64) ([]*entity.GiftShopTransaction, error)
}
