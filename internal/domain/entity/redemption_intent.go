package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
)

// IntentStatus tracks how far a compensating redemption got
type IntentStatus string

// Intent statuses
const (
	IntentStarted        IntentStatus = "started"
	IntentCompleted      IntentStatus = "completed"
	IntentRolledBack     IntentStatus = "rolled_back"
	IntentRollbackFailed IntentStatus = "rollback_failed"
)

// RedemptionIntent is the write-ahead record of a redemption. It is stored
// before the ledger debit so an interrupted redemption can be finished or undone.
type RedemptionIntent struct {
	ID            string
	UserID        uint64
	ProductID     uint64
	Points        int64
	ProductTitle  string
	Status        IntentStatus
	LedgerEntryID *uint64
	TransactionID *uint64
	Error         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRedemptionIntent starts an intent with the given id
func NewRedemptionIntent(id string, userID, productID uint64, points int64, title string, timeProvider coreport.TimeProvider) *RedemptionIntent {
	now := timeProvider.Now()
	return &RedemptionIntent{
		ID:           id,
		UserID:       userID,
		ProductID:    productID,
		Points:       points,
		ProductTitle: title,
		Status:       IntentStarted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsPending reports whether recovery still has work to do on the intent
func (i *RedemptionIntent) IsPending() bool {
	return i.Status == IntentStarted || i.Status == IntentRollbackFailed
}

// Mark moves the intent to status and records the error text, if any
func (i *RedemptionIntent) Mark(status IntentStatus, err error, timeProvider coreport.TimeProvider) {
	i.Status = status
	if err != nil {
		i.Error = err.Error()
	}
	i.UpdatedAt = timeProvider.Now()
}

// Restart reopens a rolled back intent for a retried request under the same key
func (i *RedemptionIntent) Restart(points int64, title string, timeProvider coreport.TimeProvider) {
	i.Points = points
	i.ProductTitle = title
	i.Status = IntentStarted
	i.LedgerEntryID = nil
	i.TransactionID = nil
	i.Error = ""
	i.UpdatedAt = timeProvider.Now()
}
