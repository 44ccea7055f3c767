package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
)

// Role is a portal permission group
type Role string

// Roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a portal member. The point balance is deliberately not a field:
// it is always derived from the ledger.
type User struct {
	ID         uint64
	ExternalID string // subject issued by the identity provider
	Email      string
	Name       string
	Bio        string
	Company    string
	AvatarURL  string
	Timezone   string
	Roles      []Role
	Onboarded  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUser creates a member on first sign-in
func NewUser(externalID, email, name string, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, errs.ErrInvalidInput
	}

	now := timeProvider.Now()
	return &User{
		ExternalID: externalID,
		Email:      email,
		Name:       name,
		Roles:      []Role{RoleUser},
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// GetID implements Identified
func (u *User) GetID() uint64 {
	return u.ID
}

// HasRole reports whether the user holds role
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user may use administrative endpoints
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// ProfileUpdate holds the optional fields of a profile edit
type ProfileUpdate struct {
	Name      *string
	Bio       *string
	Company   *string
	AvatarURL *string
	Timezone  *string
	Onboarded *bool
}

// ApplyProfile copies the set fields of p onto the user
func (u *User) ApplyProfile(p ProfileUpdate, timeProvider coreport.TimeProvider) {
	if p.Name != nil {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Company != nil {
		u.Company = strings.TrimSpace(*p.Company)
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.Timezone != nil {
		u.Timezone = *p.Timezone
	}
	if p.Onboarded != nil {
		u.Onboarded = *p.Onboarded
	}
	u.UpdatedAt = timeProvider.Now()
}
