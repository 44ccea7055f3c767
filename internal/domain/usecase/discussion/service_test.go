package discussion

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
	cachemocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *persistencemocks.MockDiscussionPostRepository, *persistencemocks.MockCommentRepository, *cachemocks.MockViewCache) {
	posts := persistencemocks.NewMockDiscussionPostRepository(t)
	comments := persistencemocks.NewMockCommentRepository(t)
	viewCache := cachemocks.NewMockViewCache(t)
	timeProvider := coremocks.NewMockTimeProvider(t)
	logger := coremocks.NewMockLogger(t)

	timeProvider.EXPECT().Now().Return(time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC)).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return NewService(posts, comments, viewCache, timeProvider, logger), posts, comments, viewCache
}

func TestListPosts(t *testing.T) {
	svc, posts, _, _ := newTestService(t)
	posts.EXPECT().List(mock.Anything, 100).Return([]*entity.DiscussionPost{{ID: 1}}, nil).Twice()

	got, err := svc.ListPosts(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListPosts(context.Background(), 5000)
	require.NoError(t, err)
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a pending comment", func(t *testing.T) {
		svc, posts, comments, _ := newTestService(t)
		posts.EXPECT().GetByID(mock.Anything, uint64(3)).Return(&entity.DiscussionPost{ID: 3}, nil).Once()
		comments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Comment) bool {
			return c.Status == entity.CommentPending && c.DiscussionPost.ID() == 3 && c.User.ID() == 8
		})).Return(nil).Once()

		comment, err := svc.AddComment(ctx, 8, 3, "Great thread")

		require.NoError(t, err)
		assert.False(t, comment.Counts())
	})

	t.Run("Unknown post", func(t *testing.T) {
		svc, posts, _, _ := newTestService(t)
		posts.EXPECT().GetByID(mock.Anything, uint64(3)).Return(nil, errs.ErrPostNotFound).Once()

		_, err := svc.AddComment(ctx, 8, 3, "Hello")

		assert.ErrorIs(t, err, errs.ErrPostNotFound)
	})

	t.Run("Empty body", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.AddComment(ctx, 8, 3, "  ")

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestModerateComment(t *testing.T) {
	ctx := context.Background()
	approved := entity.CommentApproved

	t.Run("Approval invalidates the leaderboard", func(t *testing.T) {
		svc, _, comments, viewCache := newTestService(t)
		comments.EXPECT().GetByID(mock.Anything, uint64(4)).Return(&entity.Comment{ID: 4, Status: entity.CommentPending}, nil).Once()
		comments.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		viewCache.EXPECT().Invalidate(mock.Anything, cache.KeyLeaderboard).Return(nil).Once()

		comment, err := svc.ModerateComment(ctx, 4, usecase.Moderation{Status: &approved})

		require.NoError(t, err)
		assert.True(t, comment.Counts())
	})

	t.Run("Unchanged visibility keeps the cache", func(t *testing.T) {
		svc, _, comments, viewCache := newTestService(t)
		deleted := true
		comments.EXPECT().GetByID(mock.Anything, uint64(4)).Return(&entity.Comment{ID: 4, Status: entity.CommentRejected}, nil).Once()
		comments.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.ModerateComment(ctx, 4, usecase.Moderation{Deleted: &deleted})

		require.NoError(t, err)
		viewCache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("Unknown status", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)
		bogus := entity.CommentStatus("spam")

		_, err := svc.ModerateComment(ctx, 4, usecase.Moderation{Status: &bogus})

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}
