package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisStore implements Store backed by Redis. Keys are persisted with no
// TTL so the address list outlives sessions.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store over an existing client.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

// Get retrieves the value for key, reporting whether it exists.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores the value for key, overwriting any previous value.
func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}
