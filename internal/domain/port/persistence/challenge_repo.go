package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// ChallengeRepository reads challenges
type ChallengeRepository interface {
	// GetByID retrieves a challenge
	//
	// Possible errors:
	// - ErrChallengeNotFound: If the challenge doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Challenge, error)

	// GetBySlug retrieves a challenge by its URL slug
	//
	// Possible errors:
	// - ErrChallengeNotFound: If the challenge doesn't exist
	GetBySlug(ctx context.Context, slug string) (*entity.Challenge, error)

	// List returns challenges ordered by deadline, open-ended last
	List(ctx context.Context) ([]*entity.Challenge, error)
}
