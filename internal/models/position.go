package models

import "time"

// Position is a timestamped coordinate sample for a user. Rows are immutable
// after creation and removed when the owning user is deleted.
type Position struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
	Longitude float64   `gorm:"not null" json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPosition builds a position sample. The timestamp is always set here,
// never supplied by the caller.
func NewPosition(userID uint, latitude, longitude float64) *Position {
	return &Position{
		UserID:    userID,
		Latitude:  latitude,
		Longitude: longitude,
		Timestamp: time.Now(),
	}
}

// Serialize returns the full wire representation.
func (p *Position) Serialize() map[string]any {
	return map[string]any{
		"id":        p.ID,
		"user_id":   p.UserID,
		"latitude":  p.Latitude,
		"longitude": p.Longitude,
		"timestamp": formatTimestamp(p.Timestamp),
	}
}

// SimpleSerialize returns coordinates and timestamp only, no identifiers.
func (p *Position) SimpleSerialize() map[string]any {
	return map[string]any{
		"latitude":  p.Latitude,
		"longitude": p.Longitude,
		"timestamp": formatTimestamp(p.Timestamp),
	}
}
