// Package cache provides an optional Redis-backed cache for catalog
// search responses. The catalog itself is static, so entries never
// need invalidation; the TTL only bounds memory on the Redis side.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0jonjo/tripkit/internal/catalog"
)

const defaultTTL = time.Hour

// SearchCache wraps a Redis client with typed get/set for search
// responses.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache constructs a SearchCache with a 1-hour TTL.
func NewSearchCache(client *redis.Client) *SearchCache {
	return &SearchCache{client: client, ttl: defaultTTL}
}

// key normalizes the search parameters the same way catalog.Search
// does, so equivalent requests share an entry.
func key(tier, query, season string, limit int) string {
	norm := func(s, fallback string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			return fallback
		}
		return s
	}
	return fmt.Sprintf("search:%s:%s:%s:%d",
		norm(tier, ""), norm(query, "any"), norm(season, "any"), limit)
}

// Get retrieves a cached search response. Returns nil, nil on a miss.
func (c *SearchCache) Get(ctx context.Context, tier, query, season string, limit int) (*catalog.SearchResponse, error) {
	val, err := c.client.Get(ctx, key(tier, query, season, limit)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for tier %s: %w", tier, err)
	}

	var resp catalog.SearchResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling cached search for tier %s: %w", tier, err)
	}

	return &resp, nil
}

// Set stores a search response with the configured TTL.
func (c *SearchCache) Set(ctx context.Context, tier, query, season string, limit int, resp *catalog.SearchResponse) error {
	if resp == nil {
		return nil
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshaling search response for tier %s: %w", tier, err)
	}

	if err := c.client.Set(ctx, key(tier, query, season, limit), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for tier %s: %w", tier, err)
	}

	return nil
}

// Ping reports Redis connectivity for health checks.
func (c *SearchCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
