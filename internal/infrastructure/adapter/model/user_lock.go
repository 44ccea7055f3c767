package model

import (
	"time"
)

// UserLock is an expiring lock that serializes redemptions of one member
type UserLock struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false;not null"`
	Owner     string    `gorm:"not null;size:36;default:''"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserLock
func (UserLock) TableName() string {
	return "user_locks"
}
