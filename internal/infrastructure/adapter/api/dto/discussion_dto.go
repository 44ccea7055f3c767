package dto

import (
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// PostResponse is a discussion thread
type PostResponse struct {
	ID        uint64    `json:"id"`
	AuthorID  uint64    `json:"authorId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewPostResponse maps a post
func NewPostResponse(p *entity.DiscussionPost) PostResponse {
	return PostResponse{
		ID:        p.ID,
		AuthorID:  p.Author.ID(),
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt,
	}
}

// CommentResponse is a comment
type CommentResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	PostID    uint64    `json:"postId,omitempty"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCommentResponse maps a comment
func NewCommentResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		UserID:    c.User.ID(),
		PostID:    c.DiscussionPost.ID(),
		Body:      c.Body,
		Status:    string(c.Status),
		Deleted:   c.Deleted,
		CreatedAt: c.CreatedAt,
	}
}

// CreateCommentRequest adds a comment to a post
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,notblank,max=4000"`
}

// ModerationRequest changes the fields that are present
type ModerationRequest struct {
	Status  *string `json:"status" binding:"omitempty,oneof=approved pending rejected"`
	Deleted *bool   `json:"deleted"`
}
