package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0jonjo/tripkit/internal/cache"
	"github.com/0jonjo/tripkit/internal/catalog"
)

func newTestCache(t *testing.T) (*cache.SearchCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewSearchCache(client), mr
}

func sampleResponse() *catalog.SearchResponse {
	return catalog.Search("silver", "beach", "any", 5)
}

func TestSearchCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	stored := sampleResponse()
	require.NoError(t, c.Set(ctx, "silver", "beach", "any", 5, stored))

	got, err := c.Get(ctx, "silver", "beach", "any", 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, stored.Status, got.Status)
	assert.Equal(t, len(stored.Results), len(got.Results))
	assert.Equal(t, stored.Results[0].Name, got.Results[0].Name)
}

func TestSearchCache_Get_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "gold", "any", "any", 10)
	require.NoError(t, err)
	assert.Nil(t, got, "cache miss should return nil, nil")
}

func TestSearchCache_KeyNormalization(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "SILVER", " Beach ", "", 5, sampleResponse()))

	// Equivalent parameters after normalization share an entry.
	got, err := c.Get(ctx, "silver", "beach", "any", 5)
	require.NoError(t, err)
	require.NotNil(t, got)

	// A different limit is a different entry.
	other, err := c.Get(ctx, "silver", "beach", "any", 6)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestSearchCache_SetNilIsNoop(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(context.Background(), "silver", "any", "any", 10, nil))
	assert.Empty(t, mr.Keys())
}

func TestSearchCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "silver", "beach", "any", 5, sampleResponse()))
	mr.FastForward(2 * time.Hour) // past the 1-hour TTL

	got, err := c.Get(ctx, "silver", "beach", "any", 5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSearchCache_Ping(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, c.Ping(context.Background()))

	mr.Close()
	assert.Error(t, c.Ping(context.Background()))
}
