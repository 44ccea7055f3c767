package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
)

// UpdateProfile applies the set fields of update to the member
func (u *UserUseCase) UpdateProfile(ctx context.Context, userID uint64, update entity.ProfileUpdate) (*entity.User, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, errs.ErrInvalidInput
	}

	user, err := u.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.ApplyProfile(update, u.timeProvider)

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.logger.Error("Failed to update profile", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return user, nil
}
