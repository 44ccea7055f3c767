package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	identity := usecase.Identity{Subject: "auth0|abc", Email: "ada@example.com", Name: "Ada"}

	t.Run("Existing user is returned", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		existing := &entity.User{ID: 4, ExternalID: "auth0|abc"}
		mockRepo.EXPECT().GetByExternalID(mock.Anything, "auth0|abc").Return(existing, nil).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		// Execute
		user, err := userUseCase.EnsureUser(ctx, identity)

		// Assertions
		require.NoError(t, err)
		assert.Same(t, existing, user)
	})

	t.Run("First sign-in creates the user", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByExternalID(mock.Anything, "auth0|abc").Return(nil, errs.ErrUserNotFound).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ExternalID == "auth0|abc" && u.Email == "ada@example.com" && u.HasRole(entity.RoleUser) && !u.IsAdmin()
		})).Run(func(_ context.Context, u *entity.User) { u.ID = 12 }).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		user, err := userUseCase.EnsureUser(ctx, identity)

		require.NoError(t, err)
		assert.Equal(t, uint64(12), user.ID)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Concurrent sign-in reads the winner", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		winner := &entity.User{ID: 3, ExternalID: "auth0|abc"}
		mockRepo.EXPECT().GetByExternalID(mock.Anything, "auth0|abc").Return(nil, errs.ErrUserNotFound).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicate).Once()
		mockRepo.EXPECT().GetByExternalID(mock.Anything, "auth0|abc").Return(winner, nil).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		user, err := userUseCase.EnsureUser(ctx, identity)

		require.NoError(t, err)
		assert.Same(t, winner, user)
	})

	t.Run("Blank subject", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByExternalID(mock.Anything, "").Return(nil, errs.ErrUserNotFound).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		user, err := userUseCase.EnsureUser(ctx, usecase.Identity{})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Repository failure", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		dbErr := errors.New("database error")
		mockRepo.EXPECT().GetByExternalID(mock.Anything, "auth0|abc").Return(nil, dbErr).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		_, err := userUseCase.EnsureUser(ctx, identity)

		assert.Equal(t, dbErr, err)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Applies set fields only", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := &entity.User{ID: 5, Name: "Ada", Company: "Analytical", Bio: "first programmer"}
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(stored, nil).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().Update(mock.Anything, stored).Return(nil).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		company := "  Engines Ltd "
		onboarded := true
		user, err := userUseCase.UpdateProfile(ctx, 5, entity.ProfileUpdate{Company: &company, Onboarded: &onboarded})

		require.NoError(t, err)
		assert.Equal(t, "Ada", user.Name)
		assert.Equal(t, "Engines Ltd", user.Company)
		assert.Equal(t, "first programmer", user.Bio)
		assert.True(t, user.Onboarded)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Blank name is rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		blank := "   "
		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		_, err := userUseCase.UpdateProfile(ctx, 5, entity.ProfileUpdate{Name: &blank})

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(nil, errs.ErrUserNotFound).Once()
		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		_, err := userUseCase.UpdateProfile(ctx, 5, entity.ProfileUpdate{})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Zero ID", func(t *testing.T) {
		userUseCase := NewUserUseCase(persistencemocks.NewMockUserRepository(t), coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		_, err := userUseCase.GetProfile(ctx, 0)

		assert.Equal(t, errs.ErrInvalidUserID, err)
	})
}
