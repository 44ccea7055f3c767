package usecase

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// MemberSummary is the public part of a profile
type MemberSummary struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// LeaderboardEntry is one ranked row
type LeaderboardEntry struct {
	Rank   int               `json:"rank"`
	Member MemberSummary     `json:"member"`
	Stats  *entity.UserStats `json:"stats"`
}

// LeaderboardUseCase ranks and lists members
type LeaderboardUseCase interface {
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	Directory(ctx context.Context, query string, limit int) ([]LeaderboardEntry, error)
}
