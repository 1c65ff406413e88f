package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const categoriesTTL = time.Hour

// CategoryCache caches each user's distinct product categories.
// Key format: categories:<user_id>; value is a JSON string array.
type CategoryCache struct {
	client *redis.Client
}

// NewCategoryCache creates a CategoryCache wrapping the given Redis client.
func NewCategoryCache(client *redis.Client) *CategoryCache {
	return &CategoryCache{client: client}
}

// Get returns the cached categories for the user. The second return value
// reports whether the cache held an entry.
func (c *CategoryCache) Get(ctx context.Context, userID string) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("category cache get: %w", err)
	}

	var categories []string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		return nil, false, fmt.Errorf("category cache decode: %w", err)
	}
	return categories, true, nil
}

// Set stores the user's categories (expires after categoriesTTL).
func (c *CategoryCache) Set(ctx context.Context, userID string, categories []string) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("category cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), raw, categoriesTTL).Err()
}

// Invalidate drops the user's cached categories. Called on every product write.
func (c *CategoryCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *CategoryCache) key(userID string) string {
	return "categories:" + userID
}
