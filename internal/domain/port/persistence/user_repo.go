package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// UserRepository reads and writes members
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByExternalID retrieves a user by the identity-provider subject
	//
	// Possible errors:
	// - ErrUserNotFound: If no user carries the subject
	// - ErrDatabaseConnection: If database connection fails
	GetByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// Create stores a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicate: If the external ID or email is taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update saves profile changes
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error

	// List returns every user ordered by ID
	List(ctx context.Context) ([]*entity.User, error)

	// Search returns users whose name or company contains query (case-insensitive)
	Search(ctx context.Context, query string, limit int) ([]*entity.User, error)
}
