package dto

import (
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
)

// ChallengeResponse is a challenge with the caller's completion flag
type ChallengeResponse struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Content     string     `json:"content,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Points      int64      `json:"points"`
	Completed   bool       `json:"completed"`
}

// NewChallengeResponse maps a challenge view; content is only sent for single challenges
func NewChallengeResponse(v usecase.ChallengeView, withContent bool) ChallengeResponse {
	resp := ChallengeResponse{
		ID:          v.Challenge.ID,
		Title:       v.Challenge.Title,
		Slug:        v.Challenge.Slug,
		Description: v.Challenge.Description,
		Deadline:    v.Challenge.Deadline,
		Points:      v.Challenge.Points,
		Completed:   v.Completed,
	}
	if withContent {
		resp.Content = v.Challenge.Content
	}
	return resp
}

// ProductResponse is a gift-shop product
type ProductResponse struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl,omitempty"`
	Redeemed bool   `json:"redeemed"`
}

// NewProductResponse maps a product; Redeemed is relative to userID
func NewProductResponse(p *entity.Product, userID uint64) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Redeemed: p.WasRedeemedBy(userID),
	}
}

// GiftShopTransactionResponse is one redemption record
type GiftShopTransactionResponse struct {
	ID              uint64           `json:"id"`
	ProductID       uint64           `json:"productId"`
	Product         *ProductResponse `json:"product,omitempty"`
	LedgerEntryID   uint64           `json:"ledgerEntryId"`
	Status          string           `json:"status"`
	ShippingAddress string           `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NewGiftShopTransactionResponse maps a transaction, embedding the product when populated
func NewGiftShopTransactionResponse(t *entity.GiftShopTransaction) GiftShopTransactionResponse {
	resp := GiftShopTransactionResponse{
		ID:              t.ID,
		ProductID:       t.Product.ID(),
		LedgerEntryID:   t.LedgerEntry.ID(),
		Status:          string(t.Status),
		ShippingAddress: t.ShippingAddress,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if product, ok := t.Product.Doc(); ok {
		p := NewProductResponse(product, t.User.ID())
		resp.Product = &p
	}
	return resp
}

// ShippingRequest sets the delivery address of a pending transaction
type ShippingRequest struct {
	Address string `json:"address" binding:"required,notblank,max=1000"`
}

// StatusRequest moves a transaction along its fulfilment states
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// LedgerEntryResponse is a created ledger entry
type LedgerEntryResponse struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	Amount      int64     `json:"amount"`
	Reason      string    `json:"reason"`
	ChallengeID uint64    `json:"challengeId,omitempty"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewLedgerEntryResponse maps a ledger entry
func NewLedgerEntryResponse(e *entity.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID,
		UserID:      e.UserID(),
		Amount:      e.Amount,
		Reason:      e.Reason,
		ChallengeID: e.Challenge.ID(),
		Type:        string(e.Type),
		CreatedAt:   e.CreatedAt,
	}
}

// CompletionRequest names the member who completed a challenge
type CompletionRequest struct {
	UserID uint64 `json:"userId" binding:"required,gt=0"`
}
