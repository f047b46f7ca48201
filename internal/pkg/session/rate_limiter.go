package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxLoginAttempts = 5
	loginWindow      = 15 * time.Minute
)

// RateLimiter throttles login attempts per (ip, principal) pair. Counters
// live in Redis so the limit holds across stateless server instances.
type RateLimiter struct {
	client *redis.Client
}

// NewRateLimiter builds a limiter around the given client. A nil client
// disables limiting.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// CheckLoginAttempt checks if a login attempt is allowed and returns the
// remaining attempts in the current window.
func (r *RateLimiter) CheckLoginAttempt(ctx context.Context, ip, principal string) (bool, int64, error) {
	if r == nil || r.client == nil {
		return true, maxLoginAttempts, nil
	}

	key := r.key(ip, principal)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment login attempt: %w", err)
	}

	// Set expiration on first attempt
	if count == 1 {
		r.client.Expire(ctx, key, loginWindow)
	}

	remaining := maxLoginAttempts - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= maxLoginAttempts, remaining, nil
}

// ResetLoginAttempts resets the counter after a successful login.
func (r *RateLimiter) ResetLoginAttempts(ctx context.Context, ip, principal string) error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Del(ctx, r.key(ip, principal)).Err()
}

func (r *RateLimiter) key(ip, principal string) string {
	return fmt.Sprintf("ratelimit:login:%s:%s", ip, principal)
}
