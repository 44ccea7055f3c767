package redemption

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
)

// IdempotencyHandler resolves Idempotency-Key replays against the intent log
type IdempotencyHandler struct {
	intentRepo persistence.RedemptionIntentRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(intentRepo persistence.RedemptionIntentRepository) *IdempotencyHandler {
	return &IdempotencyHandler{intentRepo: intentRepo}
}

// CheckIdempotency returns the intent stored under key, if any
func (h *IdempotencyHandler) CheckIdempotency(ctx context.Context, key string) (*entity.RedemptionIntent, bool, error) {
	intent, err := h.intentRepo.GetByID(ctx, key)
	if err != nil {
		if errors.Is(err, errs.ErrIntentNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to look up redemption intent: %w", err)
	}
	return intent, true, nil
}
