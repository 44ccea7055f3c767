package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("auth0|1", "ada@example.com", "Ada", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), user.ID)
		assert.Equal(t, "auth0|1", user.ExternalID)
		assert.Equal(t, []Role{RoleUser}, user.Roles)
		assert.False(t, user.Onboarded)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Blank external ID should return error", func(t *testing.T) {
		user, err := NewUser("  ", "ada@example.com", "Ada", mockTime)

		assert.Equal(t, errs.ErrInvalidInput, err)
		assert.Nil(t, user)
	})
}

func TestUserRoles(t *testing.T) {
	member := &User{Roles: []Role{RoleUser}}
	admin := &User{Roles: []Role{RoleUser, RoleAdmin}}

	assert.True(t, member.HasRole(RoleUser))
	assert.False(t, member.IsAdmin())
	assert.True(t, admin.IsAdmin())
	assert.False(t, (&User{}).HasRole(RoleUser))
}

func TestApplyProfile(t *testing.T) {
	created := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(updated).Once()

	user := &User{Name: "Ada", Bio: "bio", Timezone: "UTC", CreatedAt: created, UpdatedAt: created}
	name := "  Ada Lovelace "
	tz := "Europe/London"

	user.ApplyProfile(ProfileUpdate{Name: &name, Timezone: &tz}, mockTime)

	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "Europe/London", user.Timezone)
	assert.Equal(t, "bio", user.Bio)
	assert.Equal(t, created, user.CreatedAt)
	assert.Equal(t, updated, user.UpdatedAt)
}
