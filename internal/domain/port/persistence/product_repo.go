package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// ProductRepository reads gift-shop products and records redeemers
type ProductRepository interface {
	// GetByID retrieves a product with its RedeemedBy list
	//
	// Possible errors:
	// - ErrProductNotFound: If the product doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Product, error)

	// ListActive returns the products currently offered
	ListActive(ctx context.Context) ([]*entity.Product, error)

	// AppendRedeemer adds userID to the product's RedeemedBy list.
	// Appending an existing redeemer is a no-op.
	//
	// Possible errors:
	// - ErrProductNotFound: If the product doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	AppendRedeemer(ctx context.Context, productID, userID uint64) error

	// HasRedeemer reports whether userID is in the product's RedeemedBy list
	HasRedeemer(ctx context.Context, productID, userID uint64) (bool, error)
}
