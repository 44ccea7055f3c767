package usecase

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// Identity is what the identity provider asserts about the caller
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// UserUseCase manages member profiles
type UserUseCase interface {
	// EnsureUser returns the member for identity, creating it on first sign-in
	EnsureUser(ctx context.Context, identity Identity) (*entity.User, error)
	GetProfile(ctx context.Context, userID uint64) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint64, update entity.ProfileUpdate) (*entity.User, error)
}
