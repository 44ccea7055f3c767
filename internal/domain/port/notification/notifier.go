package notification

import "context"

// RedemptionNotice is sent to a member after a successful redemption
type RedemptionNotice struct {
	UserID       uint64 `json:"userId"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ProductID    uint64 `json:"productId"`
	ProductTitle string `json:"productTitle"`
	Points       int64  `json:"points"`
}

// Notifier hands notices to the outbound delivery pipeline
type Notifier interface {
	NotifyRedemption(ctx context.Context, notice RedemptionNotice) error
}
