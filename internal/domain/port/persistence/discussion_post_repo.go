package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// DiscussionPostRepository reads discussion threads
type DiscussionPostRepository interface {
	// GetByID retrieves a post
	//
	// Possible errors:
	// - ErrPostNotFound: If the post doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.DiscussionPost, error)

	// List returns posts newest first
	List(ctx context.Context, limit int) ([]*entity.DiscussionPost, error)
}
