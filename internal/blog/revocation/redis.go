package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "blog:revoked:"

// RedisList stores revoked ids as keys that expire with the token.
type RedisList struct {
	client *redis.Client
}

func NewRedisList(client *redis.Client) *RedisList {
	return &RedisList{client: client}
}

// NewRedisListFromURL connects using a redis:// or rediss:// URL.
func NewRedisListFromURL(rawURL string) (*RedisList, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisList(redis.NewClient(opts)), nil
}

func (l *RedisList) Revoke(ctx context.Context, jti string, exp time.Time) error {
	// A zero TTL would make the key permanent
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, keyPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke %s: %w", jti, err)
	}
	return nil
}

func (l *RedisList) RevokeIfAbsent(ctx context.Context, jti string, exp time.Time) (bool, error) {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return false, nil
	}
	ok, err := l.client.SetNX(ctx, keyPrefix+jti, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("revoke %s: %w", jti, err)
	}
	return ok, nil
}

func (l *RedisList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := l.client.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check revocation: %w", err)
	}
	return n > 0, nil
}

func (l *RedisList) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *RedisList) Close() error {
	return l.client.Close()
}
