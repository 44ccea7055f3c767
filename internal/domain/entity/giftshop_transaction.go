package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
)

// GiftShopStatus is the fulfilment state of a redemption
type GiftShopStatus string

// Gift-shop statuses
const (
	GiftShopPending    GiftShopStatus = "pending"
	GiftShopProcessing GiftShopStatus = "processing"
	GiftShopShipped    GiftShopStatus = "shipped"
	GiftShopDelivered  GiftShopStatus = "delivered"
	GiftShopCancelled  GiftShopStatus = "cancelled"
)

var giftShopTransitions = map[GiftShopStatus][]GiftShopStatus{
	GiftShopPending:    {GiftShopProcessing, GiftShopCancelled},
	GiftShopProcessing: {GiftShopShipped, GiftShopCancelled},
	GiftShopShipped:    {GiftShopDelivered},
}

// GiftShopTransaction links a redemption to its ledger debit
type GiftShopTransaction struct {
	ID              uint64
	User            Relation[*User]
	Product         Relation[*Product]
	LedgerEntry     Relation[*LedgerEntry]
	Status          GiftShopStatus
	ShippingAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewGiftShopTransaction creates a pending transaction with no shipping address
func NewGiftShopTransaction(userID, productID, ledgerEntryID uint64, timeProvider coreport.TimeProvider) (*GiftShopTransaction, error) {
	if userID == 0 || productID == 0 || ledgerEntryID == 0 {
		return nil, errs.ErrInvalidInput
	}

	now := timeProvider.Now()
	return &GiftShopTransaction{
		User:        Ref[*User](userID),
		Product:     Ref[*Product](productID),
		LedgerEntry: Ref[*LedgerEntry](ledgerEntryID),
		Status:      GiftShopPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetID implements Identified
func (t *GiftShopTransaction) GetID() uint64 {
	return t.ID
}

// TransitionTo moves the transaction to next if the status graph allows it
func (t *GiftShopTransaction) TransitionTo(next GiftShopStatus, timeProvider coreport.TimeProvider) error {
	for _, allowed := range giftShopTransitions[t.Status] {
		if allowed == next {
			t.Status = next
			t.UpdatedAt = timeProvider.Now()
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, t.Status, next)
}

// SetShippingAddress records where to ship; only pending transactions accept it
func (t *GiftShopTransaction) SetShippingAddress(address string, timeProvider coreport.TimeProvider) error {
	if t.Status != GiftShopPending {
		return fmt.Errorf("%w: shipping address is locked once %s", errs.ErrInvalidStatusTransition, t.Status)
	}
	t.ShippingAddress = address
	t.UpdatedAt = timeProvider.Now()
	return nil
}
