package entity

import "time"

// Challenge is a task members complete to earn points
type Challenge struct {
	ID          uint64
	Title       string
	Slug        string
	Description string
	Content     string
	Deadline    *time.Time
	Points      int64
	CreatedAt   time.Time
}

// GetID implements Identified
func (c *Challenge) GetID() uint64 {
	return c.ID
}

// IsOpen reports whether the challenge still accepts completions at now
func (c *Challenge) IsOpen(now time.Time) bool {
	return c.Deadline == nil || !now.After(*c.Deadline)
}
