package models

import "time"

// CommentLifetime is how long a comment stays live after creation. The
// expiration is fixed at creation and never extended.
const CommentLifetime = 3 * time.Minute

// Comment is a short-lived note a user attaches to a location. Expiry is
// derived from ExpiresAt at read time; nothing in this layer deletes or
// filters expired comments, that is left to the consuming layer.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Text       string    `json:"text"`
	Number     int       `gorm:"default:-1" json:"number"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	LocationID uint      `gorm:"not null;index" json:"location_id"`
	Timestamp  time.Time `json:"timestamp"`
	ExpiresAt  time.Time `gorm:"not null" json:"expires_at"`
}

// NewComment builds a comment attached to one user and one location. The
// creation timestamp is captured here and the expiration is pinned to
// creation + CommentLifetime.
func NewComment(text string, number int, userID, locationID uint) *Comment {
	now := time.Now()
	return &Comment{
		Text:       text,
		Number:     number,
		UserID:     userID,
		LocationID: locationID,
		Timestamp:  now,
		ExpiresAt:  now.Add(CommentLifetime),
	}
}

// Expired reports whether the comment is past its expiration at the given
// instant. True means the comment has expired.
func (c *Comment) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Serialize returns the full wire representation. The expired field is
// derived from the stored expiration, never from stored state.
func (c *Comment) Serialize(now time.Time) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"text":        c.Text,
		"user_id":     c.UserID,
		"location_id": c.LocationID,
		"time_stamp":  formatTimestamp(c.Timestamp),
		"expiration":  formatTimestamp(c.ExpiresAt),
		"expired":     c.Expired(now),
	}
}

// SimpleSerialize returns the minimal representation for embedding inside a
// location or user payload.
func (c *Comment) SimpleSerialize() map[string]any {
	return map[string]any{
		"id":        c.ID,
		"text":      c.Text,
		"timestamp": formatTimestamp(c.Timestamp),
	}
}
