package usecase

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// Moderation is an admin change to a comment; nil fields are left alone
type Moderation struct {
	Status  *entity.CommentStatus
	Deleted *bool
}

// DiscussionUseCase covers posts and comments
type DiscussionUseCase interface {
	ListPosts(ctx context.Context, limit int) ([]*entity.DiscussionPost, error)
	ListComments(ctx context.Context, postID uint64) ([]*entity.Comment, error)
	AddComment(ctx context.Context, userID, postID uint64, body string) (*entity.Comment, error)
	ModerateComment(ctx context.Context, commentID uint64, m Moderation) (*entity.Comment, error)
}
