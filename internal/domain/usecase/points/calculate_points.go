package points

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// CalculateUserPoints returns the signed sum of the user's ledger entries.
// It never fails: a missing user or a read error yields 0.
func (s *Service) CalculateUserPoints(ctx context.Context, user *entity.User) int64 {
	if user == nil || user.ID == 0 {
		s.logger.Warn("Cannot calculate points for user without an ID", nil)
		return 0
	}

	if s.readTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = s.timeProvider.WithTimeout(ctx, s.readTimeout)
		defer cancel()
	}

	entries, err := s.ledgerRepo.FindByUser(ctx, user.ID)
	if err != nil {
		s.logger.Error("Failed to fetch ledger entries", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return 0
	}

	return entity.SumAmounts(entries)
}
