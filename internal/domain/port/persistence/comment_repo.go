package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// CommentRepository stores member comments
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error

	// GetByID retrieves a comment, including deleted ones
	//
	// Possible errors:
	// - ErrCommentNotFound: If the comment doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Comment, error)

	// Update saves moderation changes
	Update(ctx context.Context, comment *entity.Comment) error

	// ListApprovedByPost returns the visible comments of a post, oldest first
	ListApprovedByPost(ctx context.Context, postID uint64) ([]*entity.Comment, error)

	// FindApprovedByUsers returns approved, non-deleted comments of all given
	// users in a single query. An empty userIDs slice means every user.
	FindApprovedByUsers(ctx context.Context, userIDs []uint64) ([]*entity.Comment, error)
}
