package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
)

// TransactionType classifies a ledger entry at creation time
type TransactionType string

// Transaction types
const (
	TypeEarn       TransactionType = "earn"
	TypeRedeem     TransactionType = "redeem"
	TypeAdjustment TransactionType = "adjustment"
)

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeEarn, TypeRedeem, TypeAdjustment:
		return true
	}
	return false
}

// RedemptionReasonPrefix starts the reason of every gift-shop debit
const RedemptionReasonPrefix = "Product redemption - "

// ChallengeReasonPrefix starts the reason of every challenge award
const ChallengeReasonPrefix = "Challenge completed - "

// LedgerEntry is an immutable signed point movement for one user
type LedgerEntry struct {
	ID        uint64
	User      Relation[*User]
	Amount    int64
	Reason    string
	Challenge Relation[*Challenge]
	Type      TransactionType
	CreatedAt time.Time
}

// NewLedgerEntry validates and builds a ledger entry.
// earn must be positive, redeem negative, adjustment non-zero.
func NewLedgerEntry(
	userID uint64,
	amount int64,
	reason string,
	txType TransactionType,
	challengeID uint64,
	timeProvider coreport.TimeProvider,
) (*LedgerEntry, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !txType.IsValid() {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, txType)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, errs.ErrEmptyReason
	}

	switch {
	case txType == TypeEarn && amount <= 0,
		txType == TypeRedeem && amount >= 0,
		amount == 0:
		return nil, fmt.Errorf("%w: %d for %s entry", errs.ErrInvalidAmount, amount, txType)
	}

	entry := &LedgerEntry{
		User:      Ref[*User](userID),
		Amount:    amount,
		Reason:    reason,
		Type:      txType,
		CreatedAt: timeProvider.Now(),
	}
	if challengeID != 0 {
		entry.Challenge = Ref[*Challenge](challengeID)
	}
	return entry, nil
}

// NewRedemptionEntry builds the debit for a gift-shop redemption
func NewRedemptionEntry(userID uint64, points int64, productTitle string, timeProvider coreport.TimeProvider) (*LedgerEntry, error) {
	return NewLedgerEntry(userID, -points, RedemptionReasonPrefix+productTitle, TypeRedeem, 0, timeProvider)
}

// NewChallengeAward builds the credit for completing a challenge
func NewChallengeAward(userID uint64, challenge *Challenge, timeProvider coreport.TimeProvider) (*LedgerEntry, error) {
	entry, err := NewLedgerEntry(userID, challenge.Points, ChallengeReasonPrefix+challenge.Title, TypeEarn, challenge.ID, timeProvider)
	if err != nil {
		return nil, err
	}
	entry.Challenge = Populated(challenge)
	return entry, nil
}

// GetID implements Identified
func (e *LedgerEntry) GetID() uint64 {
	return e.ID
}

// UserID is a shortcut for e.User.ID()
func (e *LedgerEntry) UserID() uint64 {
	return e.User.ID()
}

// IsCredit reports whether the entry adds points
func (e *LedgerEntry) IsCredit() bool {
	return e.Amount > 0
}

// IsRedemption reports whether the entry is a gift-shop debit
func (e *LedgerEntry) IsRedemption() bool {
	return e.Type == TypeRedeem
}

// CompletesChallenge reports whether the entry marks a challenge as completed
func (e *LedgerEntry) CompletesChallenge() bool {
	return e.IsCredit() && !e.Challenge.IsZero()
}

// InferTransactionType classifies rows written before the type column existed.
// Negative rows whose reason mentions "redeem" or "redemption" are redemptions;
// the second form is what the redemption workflow itself writes.
func InferTransactionType(amount int64, reason string) TransactionType {
	lower := strings.ToLower(reason)
	switch {
	case amount < 0 && (strings.Contains(lower, "redeem") || strings.Contains(lower, "redemption")):
		return TypeRedeem
	case amount > 0:
		return TypeEarn
	default:
		return TypeAdjustment
	}
}

// SumAmounts returns the signed balance of entries
func SumAmounts(entries []*LedgerEntry) int64 {
	var total int64
	for _, e := range entries {
		if e == nil {
			continue
		}
		total += e.Amount
	}
	return total
}
