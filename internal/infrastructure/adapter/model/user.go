package model

import (
	"time"
)

// User represents the database model for portal members
type User struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	ExternalID string    `gorm:"uniqueIndex;not null;size:255"`
	Email      string    `gorm:"index;size:320"`
	Name       string    `gorm:"size:255"`
	Bio        string    `gorm:"type:text"`
	Company    string    `gorm:"size:255"`
	AvatarURL  string    `gorm:"size:1024"`
	Timezone   string    `gorm:"size:64"`
	Roles      string    `gorm:"not null;size:255;default:user"` // comma separated
	Onboarded  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
