package points

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
)

// CompleteChallenge credits userID with the challenge's points
func (s *Service) CompleteChallenge(ctx context.Context, userID, challengeID uint64) (*entity.LedgerEntry, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if !challenge.IsOpen(s.timeProvider.Now()) {
		return nil, errs.ErrChallengeClosed
	}

	completions, err := s.completionsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if completions.Completed(challenge.ID) {
		return nil, errs.ErrChallengeAlreadyCompleted
	}

	entry, err := entity.NewChallengeAward(userID, challenge, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to record challenge completion", map[string]any{
			"user_id":      userID,
			"challenge_id": challengeID,
			"error":        err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Challenge completed", map[string]any{
		"user_id":      userID,
		"challenge_id": challengeID,
		"points":       entry.Amount,
	})
	s.invalidateLeaderboard(ctx)

	return entry, nil
}

// AwardPoints writes a manual adjustment; amount may be negative
func (s *Service) AwardPoints(ctx context.Context, userID uint64, amount int64, reason string) (*entity.LedgerEntry, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	entry, err := entity.NewLedgerEntry(userID, amount, reason, entity.TypeAdjustment, 0, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to record points adjustment", map[string]any{
			"user_id": userID,
			"amount":  amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Points adjusted", map[string]any{
		"user_id": userID,
		"amount":  amount,
		"reason":  reason,
	})
	s.invalidateLeaderboard(ctx)

	return entry, nil
}

func (s *Service) invalidateLeaderboard(ctx context.Context) {
	if err := s.viewCache.Invalidate(ctx, cache.KeyLeaderboard); err != nil {
		s.logger.Warn("Failed to invalidate leaderboard cache", map[string]any{
			"error": err.Error(),
		})
	}
}
