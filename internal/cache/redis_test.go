package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

type cachedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetSetJSON(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "thing:1", cachedThing{Name: "widget", Count: 3}, time.Minute))

	var got cachedThing
	found, err := GetJSON(ctx, "thing:1", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "widget", got.Name)
	assert.Equal(t, 3, got.Count)

	found, err = GetJSON(ctx, "thing:2", &got)
	require.NoError(t, err)
	assert.False(t, found)

	mr.FastForward(2 * time.Minute)
	found, err = GetJSON(ctx, "thing:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetSetJSON_NilClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "thing:1", cachedThing{Name: "widget"}, time.Minute))

	var got cachedThing
	found, err := GetJSON(ctx, "thing:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedThing) func() error {
		return func() error {
			fetches++
			*dest = cachedThing{Name: "fetched", Count: fetches}
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, "thing:1", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "fetched", first.Name)

	// Second read is served from the cache.
	var second cachedThing
	require.NoError(t, Aside(ctx, "thing:1", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, 1, second.Count)
}

func TestAside_Invalidate(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var dest cachedThing
	fetch := func() error {
		fetches++
		dest = cachedThing{Count: fetches}
		return nil
	}

	require.NoError(t, Aside(ctx, UserKey(7), &dest, UserTTL, fetch))
	Invalidate(ctx, UserKey(7))
	require.NoError(t, Aside(ctx, UserKey(7), &dest, UserTTL, fetch))
	assert.Equal(t, 2, fetches)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "user:42", UserKey(42))
	assert.Equal(t, "post:9", PostKey(9))
	assert.Equal(t, "tags:all", TagsListKey())
}
