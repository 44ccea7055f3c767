package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
)

// CommentStatus is the moderation state of a comment
type CommentStatus string

// Comment statuses
const (
	CommentApproved CommentStatus = "approved"
	CommentPending  CommentStatus = "pending"
	CommentRejected CommentStatus = "rejected"
)

// IsValid reports whether s is a known status
func (s CommentStatus) IsValid() bool {
	return s == CommentApproved || s == CommentPending || s == CommentRejected
}

// Comment is a member reply on a challenge or a discussion post
type Comment struct {
	ID             uint64
	User           Relation[*User]
	Challenge      Relation[*Challenge]
	DiscussionPost Relation[*DiscussionPost]
	Body           string
	Status         CommentStatus
	Deleted        bool
	CreatedAt      time.Time
}

// NewPostComment creates a pending comment on a discussion post
func NewPostComment(userID, postID uint64, body string, timeProvider coreport.TimeProvider) (*Comment, error) {
	if userID == 0 || postID == 0 || strings.TrimSpace(body) == "" {
		return nil, errs.ErrInvalidInput
	}
	return &Comment{
		User:           Ref[*User](userID),
		DiscussionPost: Ref[*DiscussionPost](postID),
		Body:           body,
		Status:         CommentPending,
		CreatedAt:      timeProvider.Now(),
	}, nil
}

// GetID implements Identified
func (c *Comment) GetID() uint64 {
	return c.ID
}

// Counts reports whether the comment contributes to member statistics
func (c *Comment) Counts() bool {
	return c.Status == CommentApproved && !c.Deleted
}
