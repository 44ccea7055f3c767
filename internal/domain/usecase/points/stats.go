package points

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// ComputeStats aggregates the ledger and approved comments of userIDs.
// Both stores are read once in bulk and grouped in memory. An empty
// userIDs slice aggregates every user found in the ledger or comments.
// On a read failure every requested user gets zeroed stats.
func (s *Service) ComputeStats(ctx context.Context, userIDs []uint64) map[uint64]*entity.UserStats {
	stats := make(map[uint64]*entity.UserStats, len(userIDs))
	for _, id := range userIDs {
		stats[id] = entity.NewUserStats(id)
	}

	if s.readTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = s.timeProvider.WithTimeout(ctx, s.readTimeout)
		defer cancel()
	}

	entries, err := s.ledgerRepo.FindByUsers(ctx, userIDs)
	if err != nil {
		s.logger.Error("Failed to fetch ledger entries for stats", map[string]any{
			"users": len(userIDs),
			"error": err.Error(),
		})
		return stats
	}

	comments, err := s.commentRepo.FindApprovedByUsers(ctx, userIDs)
	if err != nil {
		s.logger.Error("Failed to fetch comments for stats", map[string]any{
			"users": len(userIDs),
			"error": err.Error(),
		})
		return stats
	}

	statsFor := func(userID uint64) *entity.UserStats {
		st, ok := stats[userID]
		if !ok {
			st = entity.NewUserStats(userID)
			stats[userID] = st
		}
		return st
	}

	completed := make(map[uint64]map[uint64]struct{})
	for _, e := range entries {
		if e == nil {
			continue
		}
		userID := e.UserID()
		if len(userIDs) > 0 {
			if _, requested := stats[userID]; !requested {
				continue
			}
		}
		st := statsFor(userID)

		st.Balance += e.Amount
		if e.IsCredit() {
			st.PointsEarned += e.Amount
		}
		if e.CompletesChallenge() {
			set, ok := completed[userID]
			if !ok {
				set = make(map[uint64]struct{})
				completed[userID] = set
			}
			set[e.Challenge.ID()] = struct{}{}
		}
		if e.IsRedemption() {
			st.ItemsRedeemed++
		}
	}
	for userID, set := range completed {
		stats[userID].ChallengesCompleted = len(set)
	}

	for _, c := range comments {
		if c == nil || !c.Counts() {
			continue
		}
		userID := c.User.ID()
		if len(userIDs) > 0 {
			if _, requested := stats[userID]; !requested {
				continue
			}
		}
		st := statsFor(userID)
		st.CommentsWritten++
		if st.LastCommentAt == nil || c.CreatedAt.After(*st.LastCommentAt) {
			at := c.CreatedAt
			st.LastCommentAt = &at
		}
	}

	return stats
}
