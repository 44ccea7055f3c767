package leaderboard

import (
	"sort"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
)

// SortEntries orders entries by points earned, then challenges completed,
// then most recent comment (members without comments last), and assigns
// ranks 1..n. Equal entries keep their input order.
func SortEntries(entries []usecase.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return ranksBefore(statsOf(entries[i]), statsOf(entries[j]))
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
}

var zeroStats entity.UserStats

func statsOf(e usecase.LeaderboardEntry) *entity.UserStats {
	if e.Stats == nil {
		return &zeroStats
	}
	return e.Stats
}

func ranksBefore(a, b *entity.UserStats) bool {
	if a.PointsEarned != b.PointsEarned {
		return a.PointsEarned > b.PointsEarned
	}
	if a.ChallengesCompleted != b.ChallengesCompleted {
		return a.ChallengesCompleted > b.ChallengesCompleted
	}
	switch {
	case a.LastCommentAt == nil:
		return false
	case b.LastCommentAt == nil:
		return true
	default:
		return a.LastCommentAt.After(*b.LastCommentAt)
	}
}
