package usecase

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// ChallengeView is a challenge with the caller's completion flag
type ChallengeView struct {
	Challenge *entity.Challenge
	Completed bool
}

// PointsUseCase covers balances, statistics and challenge awards
type PointsUseCase interface {
	// CalculateUserPoints returns the signed ledger sum; failures yield 0
	CalculateUserPoints(ctx context.Context, user *entity.User) int64
	// ComputeStats aggregates ledger and comments for userIDs in bulk; failures yield zeroed stats
	ComputeStats(ctx context.Context, userIDs []uint64) map[uint64]*entity.UserStats
	ListChallenges(ctx context.Context, userID uint64) ([]ChallengeView, error)
	GetChallenge(ctx context.Context, userID uint64, slug string) (*ChallengeView, error)
	CompleteChallenge(ctx context.Context, userID, challengeID uint64) (*entity.LedgerEntry, error)
	AwardPoints(ctx context.Context, userID uint64, amount int64, reason string) (*entity.LedgerEntry, error)
}
