package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerEntry(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	testCases := []struct {
		name        string
		userID      uint64
		amount      int64
		reason      string
		txType      TransactionType
		expectedErr error
	}{
		{"Earn", 1, 50, "Challenge completed - A", TypeEarn, nil},
		{"Redeem", 1, -50, "Product redemption - Mug", TypeRedeem, nil},
		{"Negative adjustment", 1, -5, "Correction", TypeAdjustment, nil},
		{"Positive adjustment", 1, 5, "Bonus", TypeAdjustment, nil},
		{"Earn must be positive", 1, -50, "x", TypeEarn, errs.ErrInvalidAmount},
		{"Redeem must be negative", 1, 50, "x", TypeRedeem, errs.ErrInvalidAmount},
		{"Zero adjustment", 1, 0, "x", TypeAdjustment, errs.ErrInvalidAmount},
		{"Missing user", 0, 10, "x", TypeEarn, errs.ErrInvalidUserID},
		{"Unknown type", 1, 10, "x", TransactionType("gift"), errs.ErrInvalidTransactionType},
		{"Blank reason", 1, 10, " ", TypeEarn, errs.ErrEmptyReason},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := NewLedgerEntry(tc.userID, tc.amount, tc.reason, tc.txType, 0, mockTime)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, entry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.amount, entry.Amount)
			assert.Equal(t, tc.userID, entry.UserID())
			assert.True(t, entry.Challenge.IsZero())
			assert.Equal(t, fixedTime, entry.CreatedAt)
		})
	}
}

func TestNewRedemptionEntry(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	entry, err := NewRedemptionEntry(7, 250, "Hoodie", mockTime)

	require.NoError(t, err)
	assert.Equal(t, int64(-250), entry.Amount)
	assert.Equal(t, "Product redemption - Hoodie", entry.Reason)
	assert.True(t, entry.IsRedemption())
	assert.False(t, entry.IsCredit())
	assert.Equal(t, TypeRedeem, InferTransactionType(entry.Amount, entry.Reason))
}

func TestNewChallengeAward(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()
	challenge := &Challenge{ID: 4, Title: "Webinar", Points: 30}

	entry, err := NewChallengeAward(7, challenge, mockTime)

	require.NoError(t, err)
	assert.Equal(t, int64(30), entry.Amount)
	assert.Equal(t, TypeEarn, entry.Type)
	assert.True(t, entry.CompletesChallenge())
	doc, ok := entry.Challenge.Doc()
	assert.True(t, ok)
	assert.Same(t, challenge, doc)

	_, err = NewChallengeAward(7, &Challenge{ID: 5, Title: "Free"}, mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestInferTransactionType(t *testing.T) {
	assert.Equal(t, TypeRedeem, InferTransactionType(-10, "Product REDEMPTION - Mug"))
	assert.Equal(t, TypeRedeem, InferTransactionType(-10, "redeemed voucher"))
	assert.Equal(t, TypeAdjustment, InferTransactionType(-10, "Penalty"))
	assert.Equal(t, TypeEarn, InferTransactionType(10, "redeem bonus"))
	assert.Equal(t, TypeAdjustment, InferTransactionType(0, ""))
}

func TestSumAmounts(t *testing.T) {
	entries := []*LedgerEntry{{Amount: 50}, nil, {Amount: -80}, {Amount: 5}}

	assert.Equal(t, int64(-25), SumAmounts(entries))
	assert.Equal(t, int64(0), SumAmounts(nil))
}
