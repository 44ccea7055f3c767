package entity

import "time"

// UserStats are the per-member figures derived from the ledger and comments.
// PointsEarned counts credits only; Balance is the signed sum.
type UserStats struct {
	UserID              uint64     `json:"userId"`
	PointsEarned        int64      `json:"pointsEarned"`
	Balance             int64      `json:"balance"`
	ChallengesCompleted int        `json:"challengesCompleted"`
	ItemsRedeemed       int        `json:"itemsRedeemed"`
	CommentsWritten     int        `json:"commentsWritten"`
	LastCommentAt       *time.Time `json:"lastCommentAt,omitempty"`
}

// NewUserStats returns zeroed stats for userID
func NewUserStats(userID uint64) *UserStats {
	return &UserStats{UserID: userID}
}
