package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
)

// EnsureUser returns the member behind identity, creating it on first sign-in
func (u *UserUseCase) EnsureUser(ctx context.Context, identity usecase.Identity) (*entity.User, error) {
	existing, err := u.userRepo.GetByExternalID(ctx, identity.Subject)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	user, err := entity.NewUser(identity.Subject, identity.Email, identity.Name, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// Another request signed the same member in first
		if errors.Is(err, errs.ErrDuplicate) {
			return u.userRepo.GetByExternalID(ctx, identity.Subject)
		}
		u.logger.Error("Failed to create user", map[string]any{
			"external_id": identity.Subject,
			"error":       err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"user_id":     user.ID,
		"external_id": identity.Subject,
	})

	return user, nil
}
