package redemption

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
)

// ListProducts returns the active products, served from the gift-shop view cache when warm
func (s *Service) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	hit, err := s.ViewCache.GetJSON(ctx, cache.KeyGiftShop, &products)
	if err != nil {
		s.Logger.Warn("Failed to read gift-shop cache", map[string]any{
			"error": err.Error(),
		})
	}
	if hit {
		return products, nil
	}

	products, err = s.Products.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.ViewCache.SetJSON(ctx, cache.KeyGiftShop, products, s.config.GiftShopCacheTTL); err != nil {
		s.Logger.Warn("Failed to store gift-shop cache", map[string]any{
			"error": err.Error(),
		})
	}
	return products, nil
}

// GetProduct returns one product with its redeemers
func (s *Service) GetProduct(ctx context.Context, productID uint64) (*entity.Product, error) {
	if productID == 0 {
		return nil, errs.ErrInvalidInput
	}
	return s.Products.GetByID(ctx, productID)
}

// ListTransactions returns the user's gift-shop transactions
func (s *Service) ListTransactions(ctx context.Context, userID uint64) ([]*entity.GiftShopTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.Transactions.ListByUser(ctx, userID)
}

// SetShippingAddress records the address of a pending transaction owned by userID
func (s *Service) SetShippingAddress(ctx context.Context, userID, transactionID uint64, address string) (*entity.GiftShopTransaction, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errs.ErrInvalidInput
	}

	txn, err := s.Transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.User.ID() != userID {
		return nil, errs.ErrForbidden
	}

	if err := txn.SetShippingAddress(address, s.TimeProvider); err != nil {
		return nil, err
	}
	if err := s.Transactions.Update(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// UpdateStatus moves a transaction along the fulfilment graph
func (s *Service) UpdateStatus(ctx context.Context, transactionID uint64, status entity.GiftShopStatus) (*entity.GiftShopTransaction, error) {
	txn, err := s.Transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	previous := txn.Status
	if err := txn.TransitionTo(status, s.TimeProvider); err != nil {
		return nil, err
	}
	if err := s.Transactions.Update(ctx, txn); err != nil {
		return nil, err
	}

	s.Logger.Info("Gift-shop transaction status changed", map[string]any{
		"transaction_id": transactionID,
		"from":           string(previous),
		"to":             string(status),
	})
	return txn, nil
}
