package model

import (
	"time"
)

// Challenge represents the database model for challenges
type Challenge struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"not null;size:255"`
	Slug        string `gorm:"uniqueIndex;not null;size:255"`
	Description string `gorm:"type:text"`
	Content     string `gorm:"type:text"`
	Deadline    *time.Time
	Points      int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Challenge
func (Challenge) TableName() string {
	return "challenges"
}
