package model

import (
	"time"
)

// GiftShopTransaction represents the fulfilment record of a redemption
type GiftShopTransaction struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	UserID          uint64    `gorm:"not null;index"`
	ProductID       uint64    `gorm:"not null;index"`
	LedgerEntryID   uint64    `gorm:"not null;uniqueIndex"`
	Status          string    `gorm:"not null;size:20"`
	ShippingAddress string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`

	Product Product `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName specifies the table name for GiftShopTransaction
func (GiftShopTransaction) TableName() string {
	return "gift_shop_transactions"
}
