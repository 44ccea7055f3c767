package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/fanattics-portal/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGiftShopTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	txn, err := NewGiftShopTransaction(7, 3, 41, mockTime)

	require.NoError(t, err)
	assert.Equal(t, GiftShopPending, txn.Status)
	assert.Empty(t, txn.ShippingAddress)
	assert.Equal(t, uint64(41), txn.LedgerEntry.ID())

	_, err = NewGiftShopTransaction(7, 3, 0, mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestGiftShopTransitions(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	testCases := []struct {
		from    GiftShopStatus
		to      GiftShopStatus
		allowed bool
	}{
		{GiftShopPending, GiftShopProcessing, true},
		{GiftShopPending, GiftShopCancelled, true},
		{GiftShopPending, GiftShopShipped, false},
		{GiftShopProcessing, GiftShopShipped, true},
		{GiftShopShipped, GiftShopDelivered, true},
		{GiftShopShipped, GiftShopCancelled, false},
		{GiftShopDelivered, GiftShopPending, false},
		{GiftShopCancelled, GiftShopProcessing, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			txn := &GiftShopTransaction{Status: tc.from}

			err := txn.TransitionTo(tc.to, mockTime)

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, txn.Status)
			} else {
				assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
				assert.Equal(t, tc.from, txn.Status)
			}
		})
	}
}

func TestChallengeIsOpen(t *testing.T) {
	deadline := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&Challenge{}).IsOpen(deadline))
	assert.True(t, (&Challenge{Deadline: &deadline}).IsOpen(deadline))
	assert.False(t, (&Challenge{Deadline: &deadline}).IsOpen(deadline.Add(time.Second)))
}

func TestCommentCounts(t *testing.T) {
	assert.True(t, (&Comment{Status: CommentApproved}).Counts())
	assert.False(t, (&Comment{Status: CommentApproved, Deleted: true}).Counts())
	assert.False(t, (&Comment{Status: CommentPending}).Counts())
}
