package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a short-lived positive cache of gate liveness checks. It stores the
// jti most recently confirmed against the credential store per user, so the
// gate can skip one database read per request on the hot path. The TTL bounds
// how long a session invalidation can be masked, so it must stay small.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache builds a cache around the given client. A nil client yields a
// disabled cache whose lookups always miss.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	return &Cache{client: client, ttl: ttl}
}

// Confirmed reports whether (userID, jti) was recently confirmed live. Cache
// errors degrade to a miss; the caller falls through to the store.
func (c *Cache) Confirmed(ctx context.Context, userID, jti string) bool {
	if c == nil || c.client == nil {
		return false
	}

	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if err != nil {
		return false
	}
	return val == jti
}

// MarkConfirmed records that the store check passed for (userID, jti).
func (c *Cache) MarkConfirmed(ctx context.Context, userID, jti string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, c.key(userID), jti, c.ttl).Err()
}

// Invalidate drops the cached entry for a user. Called on login (session
// rotation) and logout so the old jti cannot ride out the cache TTL.
func (c *Cache) Invalidate(ctx context.Context, userID string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, c.key(userID)).Err()
}

func (c *Cache) key(userID string) string {
	return fmt.Sprintf("gate:session:%s", userID)
}
