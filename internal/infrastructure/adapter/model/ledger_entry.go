package model

import (
	"time"
)

// LedgerEntry represents one row of the points ledger. TransactionType is
// empty on rows written before the column existed.
type LedgerEntry struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	UserID          uint64    `gorm:"not null;index"`
	Amount          int64     `gorm:"not null"`
	Reason          string    `gorm:"type:text;not null"`
	ChallengeID     *uint64   `gorm:"index"`
	TransactionType string    `gorm:"size:20;not null;default:''"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "ledger"
}
