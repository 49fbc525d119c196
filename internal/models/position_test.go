package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPosition(t *testing.T) {
	t.Parallel()

	position := NewPosition(4, 42.4534, -76.4735)

	assert.Equal(t, uint(4), position.UserID)
	assert.Equal(t, 42.4534, position.Latitude)
	assert.Equal(t, -76.4735, position.Longitude)
	assert.WithinDuration(t, time.Now(), position.Timestamp, 5*time.Second,
		"timestamp is captured at creation, never caller-supplied")
}

func TestPosition_Serialize(t *testing.T) {
	t.Parallel()

	position := NewPosition(4, 42.4534, -76.4735)
	position.ID = 11

	full := position.Serialize()
	assert.Equal(t, uint(11), full["id"])
	assert.Equal(t, uint(4), full["user_id"])
	assert.Equal(t, 42.4534, full["latitude"])
	assert.Equal(t, -76.4735, full["longitude"])
	assert.IsType(t, "", full["timestamp"])

	simple := position.SimpleSerialize()
	assert.NotContains(t, simple, "id")
	assert.NotContains(t, simple, "user_id")
	for key, value := range simple {
		assert.Equal(t, full[key], value)
	}
}
