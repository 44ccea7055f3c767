package entity

import "time"

// DiscussionPost is a community thread
type DiscussionPost struct {
	ID        uint64
	Author    Relation[*User]
	Title     string
	Body      string
	CreatedAt time.Time
}

// GetID implements Identified
func (p *DiscussionPost) GetID() uint64 {
	return p.ID
}
