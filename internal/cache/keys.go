package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix     = "user:%d"
	locationKeyPrefix = "location:%d"

	// LocationsKey holds the serialized list of all locations.
	LocationsKey = "locations:all"
)

// Location rows are immutable after creation (coordinates are resolved once),
// so they tolerate a longer TTL than users, whose session state rotates.
const (
	UserTTL     = 5 * time.Minute
	LocationTTL = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func LocationKey(locationID uint) string {
	return fmt.Sprintf(locationKeyPrefix, locationID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateLocation(ctx context.Context, locationID uint) {
	Invalidate(ctx, LocationKey(locationID))
}

func InvalidateLocations(ctx context.Context) {
	Invalidate(ctx, LocationsKey)
}
