package model

import (
	"time"
)

// Comment represents a member comment on a challenge or discussion post
type Comment struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement"`
	UserID           uint64    `gorm:"not null"`
	ChallengeID      *uint64   `gorm:"index"`
	DiscussionPostID *uint64   `gorm:"index"`
	Body             string    `gorm:"type:text;not null"`
	Status           string    `gorm:"not null;size:20"`
	Deleted          bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// DiscussionPost represents a community thread
type DiscussionPost struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	AuthorID  uint64    `gorm:"not null;index"`
	Title     string    `gorm:"not null;size:255"`
	Body      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for DiscussionPost
func (DiscussionPost) TableName() string {
	return "discussion_posts"
}
