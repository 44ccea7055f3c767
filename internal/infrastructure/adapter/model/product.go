package model

import (
	"time"
)

// Product represents the database model for gift-shop products
type Product struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"not null;size:255"`
	Price     int64  `gorm:"not null"`
	ImageURL  string `gorm:"size:1024"`
	IsActive  bool   `gorm:"not null;index"`
	CreatedAt time.Time

	Redeemers []ProductRedeemer `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// ProductRedeemer is one entry of a product's redeemedBy list
type ProductRedeemer struct {
	ProductID uint64    `gorm:"primaryKey;autoIncrement:false"`
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for ProductRedeemer
func (ProductRedeemer) TableName() string {
	return "product_redeemers"
}
