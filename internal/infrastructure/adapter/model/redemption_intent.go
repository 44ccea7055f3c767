package model

import (
	"time"
)

// RedemptionIntent is the stored write-ahead record of a redemption
type RedemptionIntent struct {
	ID            string `gorm:"primaryKey;size:128"`
	UserID        uint64 `gorm:"not null;index"`
	ProductID     uint64 `gorm:"not null"`
	Points        int64  `gorm:"not null"`
	ProductTitle  string `gorm:"size:255"`
	Status        string `gorm:"not null;size:20"`
	LedgerEntryID *uint64
	TransactionID *uint64
	Error         string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for RedemptionIntent
func (RedemptionIntent) TableName() string {
	return "redemption_intents"
}
