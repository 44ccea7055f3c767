package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
)

// DefaultCacheTTL is how long a computed leaderboard is served from cache
const DefaultCacheTTL = 5 * time.Minute

var _ usecase.LeaderboardUseCase = (*Service)(nil)

// Service ranks members by their aggregated statistics
type Service struct {
	userRepo  persistence.UserRepository
	points    usecase.PointsUseCase
	viewCache cache.ViewCache
	cacheTTL  time.Duration
	logger    coreport.Logger
}

// NewService creates a new leaderboard Service
func NewService(
	userRepo persistence.UserRepository,
	points usecase.PointsUseCase,
	viewCache cache.ViewCache,
	cacheTTL time.Duration,
	logger coreport.Logger,
) *Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &Service{
		userRepo:  userRepo,
		points:    points,
		viewCache: viewCache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Leaderboard returns the top limit members; limit <= 0 returns everyone.
// The full ranking is cached and truncated per call.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]usecase.LeaderboardEntry, error) {
	var ranked []usecase.LeaderboardEntry
	hit, err := s.viewCache.GetJSON(ctx, cache.KeyLeaderboard, &ranked)
	if err != nil {
		s.logger.Warn("Failed to read leaderboard cache", map[string]any{
			"error": err.Error(),
		})
	}

	if !hit {
		users, err := s.userRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}

		ranked = s.rank(ctx, users)

		if err := s.viewCache.SetJSON(ctx, cache.KeyLeaderboard, ranked, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to store leaderboard cache", map[string]any{
				"error": err.Error(),
			})
		}
	}

	return truncate(ranked, limit), nil
}

// Directory searches members by name or company and ranks the matches
func (s *Service) Directory(ctx context.Context, query string, limit int) ([]usecase.LeaderboardEntry, error) {
	users, err := s.userRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return s.rank(ctx, users), nil
}

func (s *Service) rank(ctx context.Context, users []*entity.User) []usecase.LeaderboardEntry {
	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	stats := map[uint64]*entity.UserStats{}
	if len(ids) > 0 {
		stats = s.points.ComputeStats(ctx, ids)
	}

	entries := make([]usecase.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		st, ok := stats[u.ID]
		if !ok {
			st = entity.NewUserStats(u.ID)
		}
		entries = append(entries, usecase.LeaderboardEntry{
			Member: usecase.MemberSummary{
				ID:        u.ID,
				Name:      u.Name,
				Company:   u.Company,
				AvatarURL: u.AvatarURL,
			},
			Stats: st,
		})
	}

	SortEntries(entries)
	return entries
}

func truncate(entries []usecase.LeaderboardEntry, limit int) []usecase.LeaderboardEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
