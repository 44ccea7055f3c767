package redemption_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/usecase/redemption"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/messaging"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingIntentUpdates fails Update for the first remaining intents that match
type failingIntentUpdates struct {
	persistence.RedemptionIntentRepository
	match     func(*entity.RedemptionIntent) bool
	remaining int
}

func (f *failingIntentUpdates) Update(ctx context.Context, intent *entity.RedemptionIntent) error {
	if f.remaining > 0 && f.match(intent) {
		f.remaining--
		return errs.ErrDatabaseConnection
	}
	return f.RedemptionIntentRepository.Update(ctx, intent)
}

// txIntentFailures routes the transactional intent repository through failures
type txIntentFailures struct {
	persistence.UnitOfWork
	failures *failingIntentUpdates
}

func (u *txIntentFailures) Intents(ctx context.Context) persistence.RedemptionIntentRepository {
	u.failures.RedemptionIntentRepository = u.UnitOfWork.Intents(ctx)
	return u.failures
}

type failingTransactions struct {
	persistence.GiftShopTransactionRepository
}

func (failingTransactions) Create(context.Context, *entity.GiftShopTransaction) error {
	return errs.ErrConstraintViolation
}

type failingRedeemers struct {
	persistence.ProductRepository
}

func (failingRedeemers) AppendRedeemer(context.Context, uint64, uint64) error {
	return errs.ErrDatabaseConnection
}

type storeFixture struct {
	db      *database.TestDBManager
	repos   *database.Repositories
	userID  uint64
	product *model.Product
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()

	testDB := database.NewTestDBManager(t)
	now := testDB.TimeProvider.Now()
	user := &model.User{ExternalID: "auth0|ada", Email: "ada@example.com", Name: "Ada", Roles: "user", CreatedAt: now, UpdatedAt: now}
	product := &model.Product{Title: "Hoodie", Price: 250, IsActive: true, CreatedAt: now}
	testDB.Create(t, user, product)

	return &storeFixture{
		db:      testDB,
		repos:   testDB.Repositories(),
		userID:  user.ID,
		product: product,
	}
}

func (f *storeFixture) deps() redemption.Dependencies {
	return redemption.Dependencies{
		UnitOfWork:   f.db.Manager.CreateUnitOfWork(),
		Users:        f.repos.Users,
		Ledger:       f.repos.Ledger,
		Transactions: f.repos.Transactions,
		Products:     f.repos.Products,
		Intents:      f.repos.Intents,
		Locks:        f.repos.Locks,
		ViewCache:    cache.NoopViewCache{},
		Notifier:     messaging.NewNoopNotifier(f.db.Logger),
		TimeProvider: f.db.TimeProvider,
		Logger:       f.db.Logger,
	}
}

func (f *storeFixture) request(key string) usecase.RedeemRequest {
	return usecase.RedeemRequest{
		ProductID:      f.product.ID,
		UserID:         f.userID,
		Points:         f.product.Price,
		ProductTitle:   f.product.Title,
		IdempotencyKey: key,
	}
}

func (f *storeFixture) ledger(t *testing.T) []*entity.LedgerEntry {
	t.Helper()
	entries, err := f.repos.Ledger.FindByUser(context.Background(), f.userID)
	require.NoError(t, err)
	return entries
}

// assertNothingWritten re-queries every store a redemption writes to
func (f *storeFixture) assertNothingWritten(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	assert.Empty(t, f.ledger(t))

	txns, err := f.repos.Transactions.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, txns)

	has, err := f.repos.Products.HasRedeemer(ctx, f.product.ID, f.userID)
	require.NoError(t, err)
	assert.False(t, has)
}

func compensating() redemption.Config {
	cfg := redemption.DefaultConfig()
	cfg.Mode = redemption.ModeCompensating
	return cfg
}

func TestRedeemAgainstStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Atomic intent failure rolls back and the retry charges once", func(t *testing.T) {
		// Arrange: the completed status cannot be written the first time
		f := newStoreFixture(t)
		deps := f.deps()
		deps.UnitOfWork = &txIntentFailures{
			UnitOfWork: deps.UnitOfWork,
			failures: &failingIntentUpdates{
				match:     func(i *entity.RedemptionIntent) bool { return i.Status == entity.IntentCompleted },
				remaining: 1,
			},
		}
		svc := redemption.NewService(deps, redemption.DefaultConfig())

		// Act
		first := svc.Redeem(ctx, f.request("key-1"))

		// Assert
		assert.Equal(t, usecase.RedeemErrFailed, first.Error)
		f.assertNothingWritten(t)

		intent, err := f.repos.Intents.GetByID(ctx, "key-1")
		require.NoError(t, err)
		assert.Equal(t, entity.IntentRolledBack, intent.Status)
		assert.Nil(t, intent.LedgerEntryID)
		assert.Nil(t, intent.TransactionID)

		report, err := svc.Recover(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, usecase.RecoveryReport{}, report)

		retry := svc.Redeem(ctx, f.request("key-1"))
		assert.Equal(t, usecase.RedeemResult{Success: true}, retry)

		replay := svc.Redeem(ctx, f.request("key-1"))
		assert.Equal(t, usecase.RedeemResult{Success: true}, replay)

		entries := f.ledger(t)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(-250), entries[0].Amount)

		intent, err = f.repos.Intents.GetByID(ctx, "key-1")
		require.NoError(t, err)
		assert.Equal(t, entity.IntentCompleted, intent.Status)
		require.NotNil(t, intent.LedgerEntryID)
		assert.Equal(t, entries[0].ID, *intent.LedgerEntryID)
		assert.NotNil(t, intent.TransactionID)
	})

	t.Run("Compensating gift-shop failure leaves no debit", func(t *testing.T) {
		f := newStoreFixture(t)
		deps := f.deps()
		deps.Transactions = failingTransactions{GiftShopTransactionRepository: deps.Transactions}
		svc := redemption.NewService(deps, compensating())

		result := svc.Redeem(ctx, f.request("key-2"))

		assert.Equal(t, usecase.RedeemErrFailed, result.Error)
		f.assertNothingWritten(t)

		intent, err := f.repos.Intents.GetByID(ctx, "key-2")
		require.NoError(t, err)
		assert.Equal(t, entity.IntentRolledBack, intent.Status)
	})

	t.Run("Compensating redeemer failure leaves no records", func(t *testing.T) {
		f := newStoreFixture(t)
		deps := f.deps()
		deps.Products = failingRedeemers{ProductRepository: deps.Products}
		svc := redemption.NewService(deps, compensating())

		result := svc.Redeem(ctx, f.request(""))

		assert.Equal(t, usecase.RedeemErrFailed, result.Error)
		f.assertNothingWritten(t)
	})

	t.Run("Compensating debit that cannot be recorded is undone", func(t *testing.T) {
		f := newStoreFixture(t)
		deps := f.deps()
		deps.Intents = &failingIntentUpdates{
			RedemptionIntentRepository: deps.Intents,
			match: func(i *entity.RedemptionIntent) bool {
				return i.Status == entity.IntentStarted && i.LedgerEntryID != nil && i.TransactionID == nil
			},
			remaining: 1,
		}
		svc := redemption.NewService(deps, compensating())

		result := svc.Redeem(ctx, f.request("key-3"))

		assert.Equal(t, usecase.RedeemErrFailed, result.Error)
		f.assertNothingWritten(t)

		intent, err := f.repos.Intents.GetByID(ctx, "key-3")
		require.NoError(t, err)
		assert.Equal(t, entity.IntentRolledBack, intent.Status)

		retry := svc.Redeem(ctx, f.request("key-3"))
		assert.True(t, retry.Success)
		assert.Len(t, f.ledger(t), 1)
	})
}

func TestRecoverAgainstStore(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	svc := redemption.NewService(f.deps(), compensating())

	started := f.db.TimeProvider.Now().Add(-10 * time.Minute)
	written := started.Add(time.Second)

	debit := func(points int64, title string) *entity.LedgerEntry {
		entry := &entity.LedgerEntry{
			User:      entity.Ref[*entity.User](f.userID),
			Amount:    -points,
			Reason:    entity.RedemptionReasonPrefix + title,
			Type:      entity.TypeRedeem,
			CreatedAt: written,
		}
		require.NoError(t, f.repos.Ledger.Create(ctx, entry))
		return entry
	}
	intent := func(id string, points int64, title string) *entity.RedemptionIntent {
		i := &entity.RedemptionIntent{
			ID:           id,
			UserID:       f.userID,
			ProductID:    f.product.ID,
			Points:       points,
			ProductTitle: title,
			Status:       entity.IntentStarted,
			CreatedAt:    started,
			UpdatedAt:    started,
		}
		require.NoError(t, f.repos.Intents.Create(ctx, i))
		return i
	}

	// Every write landed but the completed status did not
	applied := intent("key-applied", 250, "Hoodie")
	appliedEntry := debit(250, "Hoodie")
	txn, err := entity.NewGiftShopTransaction(f.userID, f.product.ID, appliedEntry.ID, f.db.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, f.repos.Transactions.Create(ctx, txn))
	require.NoError(t, f.repos.Products.AppendRedeemer(ctx, f.product.ID, f.userID))
	applied.LedgerEntryID = &appliedEntry.ID
	applied.TransactionID = &txn.ID
	require.NoError(t, f.repos.Intents.Update(ctx, applied))

	// The debit landed but was never recorded on the intent
	intent("key-unrecorded", 250, "Hoodie")
	debit(250, "Hoodie")

	// Nothing landed
	intent("key-empty", 40, "Sticker")

	report, err := svc.Recover(ctx, time.Minute)

	require.NoError(t, err)
	assert.Equal(t, usecase.RecoveryReport{Examined: 3, Completed: 1, RolledBack: 2}, report)

	entries := f.ledger(t)
	require.Len(t, entries, 1)
	assert.Equal(t, appliedEntry.ID, entries[0].ID)

	for id, status := range map[string]entity.IntentStatus{
		"key-applied":    entity.IntentCompleted,
		"key-unrecorded": entity.IntentRolledBack,
		"key-empty":      entity.IntentRolledBack,
	} {
		stored, err := f.repos.Intents.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, status, stored.Status, id)
	}

	t.Run("Retry after recovery charges once", func(t *testing.T) {
		result := svc.Redeem(ctx, f.request("key-unrecorded"))

		assert.True(t, result.Success)
		assert.Len(t, f.ledger(t), 2)
	})
}
