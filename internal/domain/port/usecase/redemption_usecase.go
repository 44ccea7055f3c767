package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// RedeemRequest is the input of a gift-shop redemption
type RedeemRequest struct {
	ProductID      uint64 `validate:"gt=0"`
	UserID         uint64 `validate:"gt=0"`
	Points         int64  `validate:"gt=0"`
	ProductTitle   string `validate:"required,notblank"`
	IdempotencyKey string `validate:"omitempty,max=128"`
}

// RedeemResult reports the outcome; Error is set only when Success is false
type RedeemResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RecoveryReport summarizes a sweep over stale intents
type RecoveryReport struct {
	Examined   int
	Completed  int
	RolledBack int
	Failed     int
}

// RedemptionUseCase is the gift shop
type RedemptionUseCase interface {
	Redeem(ctx context.Context, req RedeemRequest) RedeemResult
	Recover(ctx context.Context, olderThan time.Duration) (RecoveryReport, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID uint64) (*entity.Product, error)
	ListTransactions(ctx context.Context, userID uint64) ([]*entity.GiftShopTransaction, error)
	SetShippingAddress(ctx context.Context, userID, transactionID uint64, address string) (*entity.GiftShopTransaction, error)
	UpdateStatus(ctx context.Context, transactionID uint64, status entity.GiftShopStatus) (*entity.GiftShopTransaction, error)
}

// Messages returned in RedeemResult.Error
const (
	RedeemErrInvalidInput = "Invalid input data"
	RedeemErrInProgress   = "Redemption already in progress"
	RedeemErrUserBusy     = "Another redemption is in progress for this user"
	RedeemErrFailed       = "Failed to redeem product"
)
