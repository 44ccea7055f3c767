package dto

import (
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
)

// ProfileResponse is the caller's own profile
type ProfileResponse struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio,omitempty"`
	Company   string    `json:"company,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Timezone  string    `json:"timezone,omitempty"`
	Roles     []string  `json:"roles"`
	Onboarded bool      `json:"onboarded"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewProfileResponse maps a user onto its API form
func NewProfileResponse(u *entity.User) ProfileResponse {
	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = string(r)
	}
	return ProfileResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Bio:       u.Bio,
		Company:   u.Company,
		AvatarURL: u.AvatarURL,
		Timezone:  u.Timezone,
		Roles:     roles,
		Onboarded: u.Onboarded,
		CreatedAt: u.CreatedAt,
	}
}

// UpdateProfileRequest changes the fields that are present
type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	Bio       *string `json:"bio" binding:"omitempty,max=4000"`
	Company   *string `json:"company" binding:"omitempty,max=255"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,max=1024"`
	Timezone  *string `json:"timezone" binding:"omitempty,max=64"`
	Onboarded *bool   `json:"onboarded"`
}

// ToProfileUpdate maps the request onto the domain update
func (r UpdateProfileRequest) ToProfileUpdate() entity.ProfileUpdate {
	return entity.ProfileUpdate{
		Name:      r.Name,
		Bio:       r.Bio,
		Company:   r.Company,
		AvatarURL: r.AvatarURL,
		Timezone:  r.Timezone,
		Onboarded: r.Onboarded,
	}
}

// PointsResponse is a member's signed balance
type PointsResponse struct {
	UserID uint64 `json:"userId"`
	Points int64  `json:"points"`
}

// AwardPointsRequest is an administrative ledger adjustment
type AwardPointsRequest struct {
	Amount int64  `json:"amount" binding:"required,ne=0"`
	Reason string `json:"reason" binding:"required,notblank,max=500"`
}
