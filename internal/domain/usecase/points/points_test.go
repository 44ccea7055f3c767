package points

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
	cachemocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	users      *persistencemocks.MockUserRepository
	ledger     *persistencemocks.MockLedgerRepository
	comments   *persistencemocks.MockCommentRepository
	challenges *persistencemocks.MockChallengeRepository
	cache      *cachemocks.MockViewCache
	time       *coremocks.MockTimeProvider
	logger     *coremocks.MockLogger
}

func setupService(t *testing.T, now time.Time) (*Service, testDeps) {
	d := testDeps{
		users:      persistencemocks.NewMockUserRepository(t),
		ledger:     persistencemocks.NewMockLedgerRepository(t),
		comments:   persistencemocks.NewMockCommentRepository(t),
		challenges: persistencemocks.NewMockChallengeRepository(t),
		cache:      cachemocks.NewMockViewCache(t),
		time:       coremocks.NewMockTimeProvider(t),
		logger:     coremocks.NewMockLogger(t),
	}
	d.time.EXPECT().Now().Return(now).Maybe()
	d.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	svc := NewService(d.users, d.ledger, d.comments, d.challenges, d.cache, d.time, d.logger)
	return svc, d
}

func entry(userID uint64, amount int64, txType entity.TransactionType, challengeID uint64) *entity.LedgerEntry {
	e := &entity.LedgerEntry{
		User:   entity.Ref[*entity.User](userID),
		Amount: amount,
		Reason: "test",
		Type:   txType,
	}
	if challengeID != 0 {
		e.Challenge = entity.Ref[*entity.Challenge](challengeID)
	}
	return e
}

func comment(userID uint64, at time.Time, status entity.CommentStatus, deleted bool) *entity.Comment {
	return &entity.Comment{
		User:      entity.Ref[*entity.User](userID),
		Status:    status,
		Deleted:   deleted,
		CreatedAt: at,
	}
}

func TestCalculateUserPoints(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Nil user returns zero", func(t *testing.T) {
		svc, _ := setupService(t, now)

		assert.Equal(t, int64(0), svc.CalculateUserPoints(ctx, nil))
		assert.Equal(t, int64(0), svc.CalculateUserPoints(ctx, &entity.User{}))
	})

	t.Run("No entries returns zero", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.ledger.EXPECT().FindByUser(mock.Anything, uint64(7)).Return([]*entity.LedgerEntry{}, nil).Once()

		assert.Equal(t, int64(0), svc.CalculateUserPoints(ctx, &entity.User{ID: 7}))
	})

	t.Run("Negative totals are not clamped", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.ledger.EXPECT().FindByUser(mock.Anything, uint64(7)).Return([]*entity.LedgerEntry{
			entry(7, 20, entity.TypeEarn, 1),
			entry(7, -50, entity.TypeRedeem, 0),
			entry(7, 5, entity.TypeAdjustment, 0),
		}, nil).Once()

		assert.Equal(t, int64(-25), svc.CalculateUserPoints(ctx, &entity.User{ID: 7}))
	})

	t.Run("Read error returns zero", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.ledger.EXPECT().FindByUser(mock.Anything, uint64(7)).Return(nil, errs.ErrDatabaseConnection).Once()

		assert.Equal(t, int64(0), svc.CalculateUserPoints(ctx, &entity.User{ID: 7}))
	})

	t.Run("Read timeout wraps the context", func(t *testing.T) {
		svc, d := setupService(t, now)
		svc.WithReadTimeout(2 * time.Second)

		timeoutCtx, cancel := context.WithCancel(ctx)
		d.time.EXPECT().WithTimeout(ctx, 2*time.Second).Return(timeoutCtx, cancel).Once()
		d.ledger.EXPECT().FindByUser(timeoutCtx, uint64(7)).Return([]*entity.LedgerEntry{entry(7, 3, entity.TypeEarn, 0)}, nil).Once()

		assert.Equal(t, int64(3), svc.CalculateUserPoints(ctx, &entity.User{ID: 7}))
	})
}

func TestComputeStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Aggregates ledger and comments per user", func(t *testing.T) {
		// Arrange
		svc, d := setupService(t, now)
		ids := []uint64{1, 2, 3}
		older := now.Add(-48 * time.Hour)
		newer := now.Add(-1 * time.Hour)

		d.ledger.EXPECT().FindByUsers(mock.Anything, ids).Return([]*entity.LedgerEntry{
			entry(1, 50, entity.TypeEarn, 10),
			entry(1, 30, entity.TypeEarn, 10),
			entry(1, 20, entity.TypeEarn, 11),
			entry(1, -10, entity.TypeRedeem, 0),
			entry(2, 15, entity.TypeAdjustment, 0),
			entry(2, -5, entity.TypeAdjustment, 12),
		}, nil).Once()
		d.comments.EXPECT().FindApprovedByUsers(mock.Anything, ids).Return([]*entity.Comment{
			comment(1, older, entity.CommentApproved, false),
			comment(1, newer, entity.CommentApproved, false),
			comment(1, now, entity.CommentApproved, true),
			comment(2, now, entity.CommentPending, false),
		}, nil).Once()

		// Act
		stats := svc.ComputeStats(ctx, ids)

		// Assert
		require.Len(t, stats, 3)

		first := stats[1]
		assert.Equal(t, int64(100), first.PointsEarned)
		assert.Equal(t, int64(90), first.Balance)
		assert.Equal(t, 2, first.ChallengesCompleted)
		assert.Equal(t, 1, first.ItemsRedeemed)
		assert.Equal(t, 2, first.CommentsWritten)
		require.NotNil(t, first.LastCommentAt)
		assert.True(t, first.LastCommentAt.Equal(newer))

		second := stats[2]
		assert.Equal(t, int64(15), second.PointsEarned)
		assert.Equal(t, int64(10), second.Balance)
		assert.Equal(t, 0, second.ChallengesCompleted)
		assert.Equal(t, 0, second.ItemsRedeemed)
		assert.Equal(t, 0, second.CommentsWritten)
		assert.Nil(t, second.LastCommentAt)

		assert.Equal(t, entity.NewUserStats(3), stats[3])
	})

	t.Run("Ledger failure yields zeroed stats", func(t *testing.T) {
		svc, d := setupService(t, now)
		ids := []uint64{1, 2}
		d.ledger.EXPECT().FindByUsers(mock.Anything, ids).Return(nil, errors.New("boom")).Once()

		stats := svc.ComputeStats(ctx, ids)

		require.Len(t, stats, 2)
		assert.Equal(t, entity.NewUserStats(1), stats[1])
		assert.Equal(t, entity.NewUserStats(2), stats[2])
	})

	t.Run("Comment failure yields zeroed stats", func(t *testing.T) {
		svc, d := setupService(t, now)
		ids := []uint64{1}
		d.ledger.EXPECT().FindByUsers(mock.Anything, ids).Return([]*entity.LedgerEntry{entry(1, 50, entity.TypeEarn, 0)}, nil).Once()
		d.comments.EXPECT().FindApprovedByUsers(mock.Anything, ids).Return(nil, errs.ErrDatabaseConnection).Once()

		stats := svc.ComputeStats(ctx, ids)

		assert.Equal(t, entity.NewUserStats(1), stats[1])
	})

	t.Run("Empty id list aggregates every user seen", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.ledger.EXPECT().FindByUsers(mock.Anything, []uint64(nil)).Return([]*entity.LedgerEntry{
			entry(4, 10, entity.TypeEarn, 0),
		}, nil).Once()
		d.comments.EXPECT().FindApprovedByUsers(mock.Anything, []uint64(nil)).Return([]*entity.Comment{
			comment(5, now, entity.CommentApproved, false),
		}, nil).Once()

		stats := svc.ComputeStats(ctx, nil)

		require.Len(t, stats, 2)
		assert.Equal(t, int64(10), stats[4].PointsEarned)
		assert.Equal(t, 1, stats[5].CommentsWritten)
	})
}

func TestCompletionSet(t *testing.T) {
	set := NewCompletionSet([]*entity.LedgerEntry{
		entry(1, 25, entity.TypeEarn, 100),
		entry(1, -25, entity.TypeAdjustment, 200),
		entry(1, 10, entity.TypeAdjustment, 0),
		nil,
	})

	assert.True(t, set.Completed(100))
	assert.False(t, set.Completed(200), "negative entries do not complete a challenge")
	assert.False(t, set.Completed(0))
	assert.Len(t, set, 1)
}

func TestListChallenges(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Flags completed challenges with one ledger read", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.challenges.EXPECT().List(mock.Anything).Return([]*entity.Challenge{
			{ID: 1, Title: "Write a review", Slug: "review"},
			{ID: 2, Title: "Refer a friend", Slug: "refer"},
		}, nil).Once()
		d.ledger.EXPECT().FindByUser(mock.Anything, uint64(9)).Return([]*entity.LedgerEntry{
			entry(9, 40, entity.TypeEarn, 2),
		}, nil).Once()

		views, err := svc.ListChallenges(ctx, 9)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.False(t, views[0].Completed)
		assert.True(t, views[1].Completed)
	})

	t.Run("Ledger failure is returned", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.challenges.EXPECT().List(mock.Anything).Return([]*entity.Challenge{{ID: 1}}, nil).Once()
		d.ledger.EXPECT().FindByUser(mock.Anything, uint64(9)).Return(nil, errs.ErrDatabaseConnection).Once()

		views, err := svc.ListChallenges(ctx, 9)

		assert.Nil(t, views)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestGetChallenge(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	svc, d := setupService(t, now)
	d.challenges.EXPECT().GetBySlug(mock.Anything, "missing").Return(nil, errs.ErrChallengeNotFound).Once()
	d.challenges.EXPECT().GetBySlug(mock.Anything, "review").Return(&entity.Challenge{ID: 3, Slug: "review"}, nil).Once()
	d.ledger.EXPECT().FindByUser(mock.Anything, uint64(9)).Return([]*entity.LedgerEntry{entry(9, 40, entity.TypeEarn, 3)}, nil).Once()

	_, err := svc.GetChallenge(ctx, 9, "missing")
	assert.ErrorIs(t, err, errs.ErrChallengeNotFound)

	view, err := svc.GetChallenge(ctx, 9, "review")
	require.NoError(t, err)
	assert.True(t, view.Completed)
}

func TestCompleteChallenge(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("Awards challenge points", func(t *testing.T) {
		// Arrange
		svc, d := setupService(t, now)
		challenge := &entity.Challenge{ID: 5, Title: "Join a webinar", Points: 75, Deadline: &future}

		d.users.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1}, nil).Once()
		d.challenges.EXPECT().GetByID(mock.Anything, uint64(5)).Return(challenge, nil).Once()
		d.ledger.EXPECT().FindByUser(mock.Anything, uint64(1)).Return(nil, nil).Once()
		d.ledger.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.LedgerEntry) bool {
			return e.Amount == 75 &&
				e.Type == entity.TypeEarn &&
				e.Reason == "Challenge completed - Join a webinar" &&
				e.Challenge.ID() == 5
		})).Return(nil).Once()
		d.cache.EXPECT().Invalidate(mock.Anything, cache.KeyLeaderboard).Return(nil).Once()

		// Act
		created, err := svc.CompleteChallenge(ctx, 1, 5)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(1), created.UserID())
	})

	t.Run("Closed challenge is rejected", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.users.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1}, nil).Once()
		d.challenges.EXPECT().GetByID(mock.Anything, uint64(5)).Return(&entity.Challenge{ID: 5, Points: 10, Deadline: &past}, nil).Once()

		_, err := svc.CompleteChallenge(ctx, 1, 5)

		assert.ErrorIs(t, err, errs.ErrChallengeClosed)
	})

	t.Run("Completed challenge is not awarded twice", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.users.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1}, nil).Once()
		d.challenges.EXPECT().GetByID(mock.Anything, uint64(5)).Return(&entity.Challenge{ID: 5, Points: 10}, nil).Once()
		d.ledger.EXPECT().FindByUser(mock.Anything, uint64(1)).Return([]*entity.LedgerEntry{entry(1, 10, entity.TypeEarn, 5)}, nil).Once()

		_, err := svc.CompleteChallenge(ctx, 1, 5)

		assert.ErrorIs(t, err, errs.ErrChallengeAlreadyCompleted)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.users.EXPECT().GetByID(mock.Anything, uint64(1)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := svc.CompleteChallenge(ctx, 1, 5)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestAwardPoints(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Writes an adjustment entry", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.users.EXPECT().GetByID(mock.Anything, uint64(2)).Return(&entity.User{ID: 2}, nil).Once()
		d.ledger.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.LedgerEntry) bool {
			return e.Amount == -15 && e.Type == entity.TypeAdjustment && e.Reason == "Duplicate award"
		})).Return(nil).Once()
		d.cache.EXPECT().Invalidate(mock.Anything, cache.KeyLeaderboard).Return(errors.New("redis down")).Once()

		created, err := svc.AwardPoints(ctx, 2, -15, "Duplicate award")

		require.NoError(t, err)
		assert.Equal(t, now, created.CreatedAt)
	})

	t.Run("Zero amount is rejected", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.users.EXPECT().GetByID(mock.Anything, uint64(2)).Return(&entity.User{ID: 2}, nil).Once()

		_, err := svc.AwardPoints(ctx, 2, 0, "nothing")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Blank reason is rejected", func(t *testing.T) {
		svc, d := setupService(t, now)
		d.users.EXPECT().GetByID(mock.Anything, uint64(2)).Return(&entity.User{ID: 2}, nil).Once()

		_, err := svc.AwardPoints(ctx, 2, 10, "  ")

		assert.ErrorIs(t, err, errs.ErrEmptyReason)
	})
}
