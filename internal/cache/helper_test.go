package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedLocation struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedLocation) func() error {
		return func() error {
			fetches++
			dest.ID = 4
			dest.Name = "Uris Library"
			return nil
		}
	}

	var first cachedLocation
	require.NoError(t, Aside(ctx, LocationKey(4), &first, LocationTTL, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "Uris Library", first.Name)

	var second cachedLocation
	require.NoError(t, Aside(ctx, LocationKey(4), &second, LocationTTL, fetch(&second)))
	assert.Equal(t, 1, fetches, "second read must come from the cache")
	assert.Equal(t, first, second)
}

func TestAside_FetchErrorNotCached(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var dest cachedLocation
	fetchErr := errors.New("row not found")
	err := Aside(ctx, LocationKey(9), &dest, time.Minute, func() error { return fetchErr })
	assert.ErrorIs(t, err, fetchErr)

	found, err := GetJSON(ctx, LocationKey(9), &dest)
	require.NoError(t, err)
	assert.False(t, found, "failed fetches must not populate the cache")
}

func TestInvalidate(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(2), cachedLocation{ID: 2}, UserTTL))
	InvalidateUser(ctx, 2)

	var dest cachedLocation
	found, err := GetJSON(ctx, UserKey(2), &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHelpersNoopWithoutClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var dest cachedLocation
	found, err := GetJSON(ctx, UserKey(1), &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetJSON(ctx, UserKey(1), dest, time.Minute))
}
