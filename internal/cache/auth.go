package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wilt/wilt/internal/model"
)

const (
	// authCachePrefix is the Redis key prefix for verified-user cache.
	authCachePrefix = "auth:user:"
	// authCacheTTL is the time-to-live for cached auth contexts.
	// Short on purpose: a deactivated account keeps a valid token out for
	// at most this long.
	authCacheTTL = 5 * time.Minute
)

// cachedAuthContext represents a verified user stored in Redis.
type cachedAuthContext struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// GetAuthContext retrieves a cached auth context by user id.
// Returns nil on cache miss.
func (c *Cache) GetAuthContext(ctx context.Context, userID string) (*model.AuthContext, error) {
	key := authCachePrefix + userID

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// Cache miss is not an error
		return nil, nil //nolint:nilerr
	}

	var cached cachedAuthContext
	if err := json.Unmarshal(data, &cached); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, nil //nolint:nilerr
	}

	return &model.AuthContext{
		UserID:   cached.UserID,
		Username: cached.Username,
	}, nil
}

// SetAuthContext caches a verified user's auth context.
func (c *Cache) SetAuthContext(ctx context.Context, auth *model.AuthContext) error {
	key := authCachePrefix + auth.UserID

	data, err := json.Marshal(cachedAuthContext{
		UserID:   auth.UserID,
		Username: auth.Username,
	})
	if err != nil {
		return fmt.Errorf("marshal auth context: %w", err)
	}

	return c.client.Set(ctx, key, data, authCacheTTL).Err()
}

// DeleteAuthContext removes a cached auth context.
func (c *Cache) DeleteAuthContext(ctx context.Context, userID string) error {
	key := authCachePrefix + userID
	return c.client.Del(ctx, key).Err()
}
