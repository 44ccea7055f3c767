package redemption

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/notification"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
	cachemocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/core"
	notificationmocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/notification"
	persistencemocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

type mocks struct {
	uow          *persistencemocks.MockUnitOfWork
	users        *persistencemocks.MockUserRepository
	ledger       *persistencemocks.MockLedgerRepository
	transactions *persistencemocks.MockGiftShopTransactionRepository
	products     *persistencemocks.MockProductRepository
	intents      *persistencemocks.MockRedemptionIntentRepository
	locks        *persistencemocks.MockUserLockRepository
	viewCache    *cachemocks.MockViewCache
	notifier     *notificationmocks.MockNotifier
	time         *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
}

var now = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func newMocks(t *testing.T) *mocks {
	m := &mocks{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		users:        persistencemocks.NewMockUserRepository(t),
		ledger:       persistencemocks.NewMockLedgerRepository(t),
		transactions: persistencemocks.NewMockGiftShopTransactionRepository(t),
		products:     persistencemocks.NewMockProductRepository(t),
		intents:      persistencemocks.NewMockRedemptionIntentRepository(t),
		locks:        persistencemocks.NewMockUserLockRepository(t),
		viewCache:    cachemocks.NewMockViewCache(t),
		notifier:     notificationmocks.NewMockNotifier(t),
		time:         coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	m.time.EXPECT().Now().Return(now).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *mocks) service(cfg Config) *Service {
	return NewService(Dependencies{
		UnitOfWork:   m.uow,
		Users:        m.users,
		Ledger:       m.ledger,
		Transactions: m.transactions,
		Products:     m.products,
		Intents:      m.intents,
		Locks:        m.locks,
		ViewCache:    m.viewCache,
		Notifier:     m.notifier,
		TimeProvider: m.time,
		Logger:       m.logger,
	}, cfg)
}

func (m *mocks) expectSuccessSideEffects(userID, productID uint64) {
	m.viewCache.EXPECT().Invalidate(mock.Anything, cache.KeyGiftShop, cache.KeyLeaderboard).Return(nil).Once()
	m.users.EXPECT().GetByID(mock.Anything, userID).Return(&entity.User{ID: userID, Email: "ada@example.com", Name: "Ada"}, nil).Once()
	m.notifier.EXPECT().NotifyRedemption(mock.Anything, mock.MatchedBy(func(n notification.RedemptionNotice) bool {
		return n.UserID == userID && n.ProductID == productID && n.Email == "ada@example.com"
	})).Return(nil).Once()
}

func compensatingConfig() Config {
	cfg := DefaultConfig()
	cfg.Mode = ModeCompensating
	return cfg
}

func validRequest() usecase.RedeemRequest {
	return usecase.RedeemRequest{
		ProductID:    3,
		UserID:       7,
		Points:       250,
		ProductTitle: "Hoodie",
	}
}

func setLedgerID(id uint64) func(context.Context, *entity.LedgerEntry) {
	return func(_ context.Context, e *entity.LedgerEntry) { e.ID = id }
}

func isRedemptionEntry(e *entity.LedgerEntry) bool {
	return e.Amount == -250 &&
		e.Type == entity.TypeRedeem &&
		e.Reason == "Product redemption - Hoodie" &&
		e.UserID() == 7
}

func TestRedeemValidation(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(*usecase.RedeemRequest)
	}{
		{"Zero points", func(r *usecase.RedeemRequest) { r.Points = 0 }},
		{"Negative points", func(r *usecase.RedeemRequest) { r.Points = -5 }},
		{"Zero user", func(r *usecase.RedeemRequest) { r.UserID = 0 }},
		{"Zero product", func(r *usecase.RedeemRequest) { r.ProductID = 0 }},
		{"Empty title", func(r *usecase.RedeemRequest) { r.ProductTitle = "" }},
		{"Blank title", func(r *usecase.RedeemRequest) { r.ProductTitle = "   " }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange: no repository expectations, so any write fails the test
			m := newMocks(t)
			svc := m.service(DefaultConfig())
			req := validRequest()
			tc.mutate(&req)

			// Act
			result := svc.Redeem(ctx, req)

			// Assert
			assert.Equal(t, usecase.RedeemResult{Success: false, Error: "Invalid input data"}, result)
		})
	}
}

func TestRedeemAtomic(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey, "tx")

	t.Run("All writes commit together", func(t *testing.T) {
		// Arrange
		m := newMocks(t)
		svc := m.service(DefaultConfig())

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().Ledger(txCtx).Return(m.ledger).Once()
		m.uow.EXPECT().GiftShopTransactions(txCtx).Return(m.transactions).Once()
		m.uow.EXPECT().Products(txCtx).Return(m.products).Once()

		m.ledger.EXPECT().Create(txCtx, mock.MatchedBy(isRedemptionEntry)).
			Run(func(_ context.Context, e *entity.LedgerEntry) { e.ID = 41 }).
			Return(nil).Once()
		m.transactions.EXPECT().Create(txCtx, mock.MatchedBy(func(txn *entity.GiftShopTransaction) bool {
			return txn.LedgerEntry.ID() == 41 &&
				txn.Status == entity.GiftShopPending &&
				txn.ShippingAddress == "" &&
				txn.Product.ID() == 3
		})).Return(nil).Once()
		m.products.EXPECT().AppendRedeemer(txCtx, uint64(3), uint64(7)).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.expectSuccessSideEffects(7, 3)

		// Act
		result := svc.Redeem(ctx, validRequest())

		// Assert
		assert.Equal(t, usecase.RedeemResult{Success: true}, result)
		m.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("Transaction failure rolls back", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(DefaultConfig())

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().Ledger(txCtx).Return(m.ledger).Once()
		m.uow.EXPECT().GiftShopTransactions(txCtx).Return(m.transactions).Once()
		m.ledger.EXPECT().Create(txCtx, mock.Anything).Run(setLedgerID(41)).Return(nil).Once()
		m.transactions.EXPECT().Create(txCtx, mock.Anything).Return(errs.ErrConstraintViolation).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result := svc.Redeem(ctx, validRequest())

		assert.Equal(t, usecase.RedeemResult{Success: false, Error: usecase.RedeemErrFailed}, result)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
		m.ledger.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Commit failure is reported and rollback errors are swallowed", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(DefaultConfig())

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().Ledger(txCtx).Return(m.ledger).Once()
		m.uow.EXPECT().GiftShopTransactions(txCtx).Return(m.transactions).Once()
		m.uow.EXPECT().Products(txCtx).Return(m.products).Once()
		m.ledger.EXPECT().Create(txCtx, mock.Anything).Run(setLedgerID(41)).Return(nil).Once()
		m.transactions.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		m.products.EXPECT().AppendRedeemer(txCtx, uint64(3), uint64(7)).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(errs.ErrDatabaseConnection).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(errors.New("already rolled back")).Once()

		result := svc.Redeem(ctx, validRequest())

		assert.False(t, result.Success)
		assert.Equal(t, usecase.RedeemErrFailed, result.Error)
	})

	t.Run("Idempotency key records a completed intent", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(DefaultConfig())
		req := validRequest()
		req.IdempotencyKey = "key-1"

		var statuses []entity.IntentStatus
		m.intents.EXPECT().GetByID(ctx, "key-1").Return(nil, errs.ErrIntentNotFound).Once()
		m.intents.EXPECT().Create(ctx, mock.MatchedBy(func(i *entity.RedemptionIntent) bool {
			return i.ID == "key-1" && i.Status == entity.IntentStarted
		})).Return(nil).Once()
		m.intents.EXPECT().Update(mock.Anything, mock.Anything).
			Run(func(_ context.Context, i *entity.RedemptionIntent) { statuses = append(statuses, i.Status) }).
			Return(nil)

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().Ledger(txCtx).Return(m.ledger).Once()
		m.uow.EXPECT().GiftShopTransactions(txCtx).Return(m.transactions).Once()
		m.uow.EXPECT().Products(txCtx).Return(m.products).Once()
		m.ledger.EXPECT().Create(txCtx, mock.Anything).Run(setLedgerID(41)).Return(nil).Once()
		m.transactions.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		m.products.EXPECT().AppendRedeemer(txCtx, uint64(3), uint64(7)).Return(nil).Once()
		m.uow.EXPECT().Intents(txCtx).Return(m.intents).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.expectSuccessSideEffects(7, 3)

		result := svc.Redeem(ctx, req)

		assert.True(t, result.Success)
		assert.Equal(t, []entity.IntentStatus{entity.IntentCompleted}, statuses)
		m.intents.AssertCalled(t, "Update", txCtx, mock.Anything)
	})

	t.Run("Intent failure rolls the writes back", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(DefaultConfig())
		req := validRequest()
		req.IdempotencyKey = "key-1"

		var final *entity.RedemptionIntent
		m.intents.EXPECT().GetByID(ctx, "key-1").Return(nil, errs.ErrIntentNotFound).Once()
		m.intents.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		m.intents.EXPECT().Update(txCtx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		m.intents.EXPECT().Update(mock.Anything, mock.Anything).
			Run(func(_ context.Context, i *entity.RedemptionIntent) { final = i }).
			Return(nil).Once()

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().Ledger(txCtx).Return(m.ledger).Once()
		m.uow.EXPECT().GiftShopTransactions(txCtx).Return(m.transactions).Once()
		m.uow.EXPECT().Products(txCtx).Return(m.products).Once()
		m.uow.EXPECT().Intents(txCtx).Return(m.intents).Once()
		m.ledger.EXPECT().Create(txCtx, mock.Anything).Run(setLedgerID(41)).Return(nil).Once()
		m.transactions.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		m.products.EXPECT().AppendRedeemer(txCtx, uint64(3), uint64(7)).Return(nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result := svc.Redeem(ctx, req)

		assert.Equal(t, usecase.RedeemErrFailed, result.Error)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
		require.NotNil(t, final)
		assert.Equal(t, entity.IntentRolledBack, final.Status)
		assert.Nil(t, final.LedgerEntryID)
		assert.Nil(t, final.TransactionID)
	})
}

func TestRedeemCompensating(t *testing.T) {
	ctx := context.Background()

	t.Run("All writes succeed", func(t *testing.T) {
		// Arrange
		m := newMocks(t)
		svc := m.service(compensatingConfig())

		var statuses []entity.IntentStatus
		m.intents.EXPECT().Create(ctx, mock.MatchedBy(func(i *entity.RedemptionIntent) bool {
			return i.ID != "" && i.UserID == 7 && i.ProductID == 3 && i.Points == 250
		})).Return(nil).Once()
		m.intents.EXPECT().Update(mock.Anything, mock.Anything).
			Run(func(_ context.Context, i *entity.RedemptionIntent) { statuses = append(statuses, i.Status) }).
			Return(nil)
		m.ledger.EXPECT().Create(ctx, mock.MatchedBy(isRedemptionEntry)).
			Run(func(_ context.Context, e *entity.LedgerEntry) { e.ID = 11 }).
			Return(nil).Once()
		m.transactions.EXPECT().Create(ctx, mock.Anything).
			Run(func(_ context.Context, txn *entity.GiftShopTransaction) { txn.ID = 22 }).
			Return(nil).Once()
		m.products.EXPECT().AppendRedeemer(ctx, uint64(3), uint64(7)).Return(nil).Once()
		m.expectSuccessSideEffects(7, 3)

		// Act
		result := svc.Redeem(ctx, validRequest())

		// Assert
		assert.True(t, result.Success)
		assert.Equal(t, []entity.IntentStatus{entity.IntentStarted, entity.IntentStarted, entity.IntentCompleted}, statuses)
	})

	t.Run("Ledger failure leaves nothing to undo", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(compensatingConfig())

		m.intents.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		m.intents.EXPECT().Update(mock.Anything, mock.MatchedBy(func(i *entity.RedemptionIntent) bool {
			return i.Status == entity.IntentRolledBack && i.LedgerEntryID == nil
		})).Return(nil).Once()
		m.ledger.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		result := svc.Redeem(ctx, validRequest())

		assert.Equal(t, usecase.RedeemErrFailed, result.Error)
	})

	t.Run("Transaction failure deletes the ledger entry", func(t *testing.T) {
		// Arrange
		m := newMocks(t)
		svc := m.service(compensatingConfig())

		var final *entity.RedemptionIntent
		m.intents.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		m.intents.EXPECT().Update(mock.Anything, mock.Anything).
			Run(func(_ context.Context, i *entity.RedemptionIntent) { final = i }).
			Return(nil)
		m.ledger.EXPECT().Create(ctx, mock.Anything).
			Run(func(_ context.Context, e *entity.LedgerEntry) { e.ID = 11 }).
			Return(nil).Once()
		m.transactions.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed")).Once()
		m.ledger.EXPECT().Delete(mock.Anything, uint64(11)).Return(nil).Once()

		// Act
		result := svc.Redeem(ctx, validRequest())

		// Assert
		assert.False(t, result.Success)
		require.NotNil(t, final)
		assert.Equal(t, entity.IntentRolledBack, final.Status)
		assert.Contains(t, final.Error, "insert failed")
		m.transactions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		m.viewCache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Redeemer failure deletes transaction then ledger entry", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(compensatingConfig())

		var order []string
		m.intents.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		m.intents.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
		m.ledger.EXPECT().Create(ctx, mock.Anything).
			Run(func(_ context.Context, e *entity.LedgerEntry) { e.ID = 11 }).
			Return(nil).Once()
		m.transactions.EXPECT().Create(ctx, mock.Anything).
			Run(func(_ context.Context, txn *entity.GiftShopTransaction) { txn.ID = 22 }).
			Return(nil).Once()
		m.products.EXPECT().AppendRedeemer(ctx, uint64(3), uint64(7)).Return(errs.ErrProductNotFound).Once()
		m.transactions.EXPECT().Delete(mock.Anything, uint64(22)).
			Run(func(context.Context, uint64) { order = append(order, "transaction") }).
			Return(nil).Once()
		m.ledger.EXPECT().Delete(mock.Anything, uint64(11)).
			Run(func(context.Context, uint64) { order = append(order, "ledger") }).
			Return(errs.ErrLedgerEntryNotFound).Once()

		result := svc.Redeem(ctx, validRequest())

		assert.False(t, result.Success)
		assert.Equal(t, []string{"transaction", "ledger"}, order)
	})

	t.Run("Unrecorded debit is deleted", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(compensatingConfig())

		m.intents.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		m.intents.EXPECT().Update(mock.Anything, mock.MatchedBy(func(i *entity.RedemptionIntent) bool {
			return i.Status == entity.IntentStarted
		})).Return(errs.ErrDatabaseConnection).Once()
		m.intents.EXPECT().Update(mock.Anything, mock.MatchedBy(func(i *entity.RedemptionIntent) bool {
			return i.Status == entity.IntentRolledBack
		})).Return(nil).Once()
		m.ledger.EXPECT().Create(ctx, mock.Anything).Run(setLedgerID(11)).Return(nil).Once()
		m.ledger.EXPECT().Delete(mock.Anything, uint64(11)).Return(nil).Once()

		result := svc.Redeem(ctx, validRequest())

		assert.Equal(t, usecase.RedeemErrFailed, result.Error)
		m.transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Transient rollback failures are retried then recorded", func(t *testing.T) {
		m := newMocks(t)
		cfg := compensatingConfig()
		cfg.Retry.MaxRetries = 3
		svc := m.service(cfg)

		var final *entity.RedemptionIntent
		m.intents.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		m.intents.EXPECT().Update(mock.Anything, mock.Anything).
			Run(func(_ context.Context, i *entity.RedemptionIntent) { final = i }).
			Return(nil)
		m.ledger.EXPECT().Create(ctx, mock.Anything).
			Run(func(_ context.Context, e *entity.LedgerEntry) { e.ID = 11 }).
			Return(nil).Once()
		m.transactions.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrConstraintViolation).Once()
		m.ledger.EXPECT().Delete(mock.Anything, uint64(11)).Return(errs.ErrDatabaseConnection).Times(3)
		m.time.EXPECT().Sleep(mock.Anything, mock.AnythingOfType("time.Duration")).Return(nil).Times(2)

		result := svc.Redeem(ctx, validRequest())

		assert.Equal(t, usecase.RedeemErrFailed, result.Error)
		require.NotNil(t, final)
		assert.Equal(t, entity.IntentRollbackFailed, final.Status)
	})
}

func TestRedeemIdempotency(t *testing.T) {
	ctx := context.Background()
	req := validRequest()
	req.IdempotencyKey = "abc"

	t.Run("Completed intent replays success without writes", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(compensatingConfig())
		m.intents.EXPECT().GetByID(ctx, "abc").Return(&entity.RedemptionIntent{
			ID: "abc", UserID: 7, ProductID: 3, Status: entity.IntentCompleted,
		}, nil).Once()

		result := svc.Redeem(ctx, req)

		assert.Equal(t, usecase.RedeemResult{Success: true}, result)
	})

	t.Run("Pending intent reports in progress", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(compensatingConfig())
		m.intents.EXPECT().GetByID(ctx, "abc").Return(&entity.RedemptionIntent{
			ID: "abc", UserID: 7, ProductID: 3, Status: entity.IntentStarted,
		}, nil).Once()

		result := svc.Redeem(ctx, req)

		assert.Equal(t, usecase.RedeemErrInProgress, result.Error)
	})

	t.Run("Key reused for another product is rejected", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(compensatingConfig())
		m.intents.EXPECT().GetByID(ctx, "abc").Return(&entity.RedemptionIntent{
			ID: "abc", UserID: 7, ProductID: 99, Status: entity.IntentCompleted,
		}, nil).Once()

		result := svc.Redeem(ctx, req)

		assert.Equal(t, usecase.RedeemErrInvalidInput, result.Error)
	})

	t.Run("Rolled back intent is restarted", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(compensatingConfig())
		ledgerID := uint64(5)
		m.intents.EXPECT().GetByID(ctx, "abc").Return(&entity.RedemptionIntent{
			ID: "abc", UserID: 7, ProductID: 3, Status: entity.IntentRolledBack, LedgerEntryID: &ledgerID, Error: "boom",
		}, nil).Once()
		m.intents.EXPECT().Update(mock.Anything, mock.MatchedBy(func(i *entity.RedemptionIntent) bool {
			return i.Status == entity.IntentStarted && i.LedgerEntryID == nil && i.Error == ""
		})).Return(nil).Once()
		m.intents.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
		m.ledger.EXPECT().Create(ctx, mock.Anything).Run(setLedgerID(12)).Return(nil).Once()
		m.transactions.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		m.products.EXPECT().AppendRedeemer(ctx, uint64(3), uint64(7)).Return(nil).Once()
		m.expectSuccessSideEffects(7, 3)

		result := svc.Redeem(ctx, req)

		assert.True(t, result.Success)
		m.intents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Concurrent duplicate key", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(compensatingConfig())
		m.intents.EXPECT().GetByID(ctx, "abc").Return(nil, errs.ErrIntentNotFound).Once()
		m.intents.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicate).Once()

		result := svc.Redeem(ctx, req)

		assert.Equal(t, usecase.RedeemErrInProgress, result.Error)
	})
}

func TestRedeemSerializedPerUser(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.SerializePerUser = true
	cfg.LockTimeout = 5 * time.Second

	t.Run("Busy user is rejected", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(cfg)
		m.locks.EXPECT().AcquireLock(ctx, uint64(7), 5*time.Second).Return("", errs.ErrUserLocked).Once()

		result := svc.Redeem(ctx, validRequest())

		assert.Equal(t, usecase.RedeemErrUserBusy, result.Error)
	})

	t.Run("Lock is released after the redemption", func(t *testing.T) {
		m := newMocks(t)
		svc := m.service(cfg)
		txCtx := context.WithValue(ctx, txKey, "tx")

		m.locks.EXPECT().AcquireLock(ctx, uint64(7), 5*time.Second).Return("owner-1", nil).Once()
		m.locks.EXPECT().ReleaseLock(mock.Anything, uint64(7), "owner-1").Return(nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().Ledger(txCtx).Return(m.ledger).Once()
		m.ledger.EXPECT().Create(txCtx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result := svc.Redeem(ctx, validRequest())

		assert.False(t, result.Success)
	})
}

func TestRedeemSideEffectsAreBestEffort(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey, "tx")
	m := newMocks(t)
	svc := m.service(DefaultConfig())

	m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
	m.uow.EXPECT().Ledger(txCtx).Return(m.ledger).Once()
	m.uow.EXPECT().GiftShopTransactions(txCtx).Return(m.transactions).Once()
	m.uow.EXPECT().Products(txCtx).Return(m.products).Once()
	m.ledger.EXPECT().Create(txCtx, mock.Anything).Run(setLedgerID(41)).Return(nil).Once()
	m.transactions.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
	m.products.EXPECT().AppendRedeemer(txCtx, uint64(3), uint64(7)).Return(nil).Once()
	m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
	m.viewCache.EXPECT().Invalidate(mock.Anything, cache.KeyGiftShop, cache.KeyLeaderboard).Return(errors.New("redis down")).Once()
	m.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7}, nil).Once()
	m.notifier.EXPECT().NotifyRedemption(mock.Anything, mock.Anything).Return(errors.New("amqp closed")).Once()

	result := svc.Redeem(ctx, validRequest())

	assert.True(t, result.Success)
}

func TestRecover(t *testing.T) {
	ctx := context.Background()
	ledgerA, txnA := uint64(1), uint64(2)
	ledgerB := uint64(3)
	ledgerC, txnC := uint64(4), uint64(5)

	complete := &entity.RedemptionIntent{ID: "a", UserID: 7, ProductID: 3, Status: entity.IntentStarted, LedgerEntryID: &ledgerA, TransactionID: &txnA}
	partial := &entity.RedemptionIntent{ID: "b", UserID: 7, ProductID: 3, Status: entity.IntentRollbackFailed, LedgerEntryID: &ledgerB}
	broken := &entity.RedemptionIntent{ID: "c", UserID: 8, ProductID: 3, Status: entity.IntentStarted, LedgerEntryID: &ledgerC, TransactionID: &txnC}

	m := newMocks(t)
	svc := m.service(compensatingConfig())

	m.intents.EXPECT().ListStale(ctx, now.Add(-10*time.Minute), 100).
		Return([]*entity.RedemptionIntent{complete, partial, broken}, nil).Once()

	m.ledger.EXPECT().GetByID(ctx, ledgerA).Return(&entity.LedgerEntry{ID: ledgerA}, nil).Once()
	m.transactions.EXPECT().GetByID(ctx, txnA).Return(&entity.GiftShopTransaction{ID: txnA}, nil).Once()
	m.products.EXPECT().HasRedeemer(ctx, uint64(3), uint64(7)).Return(true, nil).Once()

	m.ledger.EXPECT().Delete(mock.Anything, ledgerB).Return(nil).Once()

	m.ledger.EXPECT().GetByID(ctx, ledgerC).Return(nil, errs.ErrDatabaseConnection).Once()

	m.intents.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Times(2)

	report, err := svc.Recover(ctx, 10*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, usecase.RecoveryReport{Examined: 3, Completed: 1, RolledBack: 1, Failed: 1}, report)
	assert.Equal(t, entity.IntentCompleted, complete.Status)
	assert.Equal(t, entity.IntentRolledBack, partial.Status)
	assert.Equal(t, entity.IntentStarted, broken.Status)
}

func TestRecoverListFailure(t *testing.T) {
	m := newMocks(t)
	svc := m.service(compensatingConfig())
	m.intents.EXPECT().ListStale(mock.Anything, mock.Anything, mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

	_, err := svc.Recover(context.Background(), time.Minute)

	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 5, RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(6, cfg))

	cfg.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		d := calculateBackoffWithJitter(1, cfg)
		assert.GreaterOrEqual(t, d, 200*time.Millisecond)
		assert.LessOrEqual(t, d, 300*time.Millisecond)
	}
}
