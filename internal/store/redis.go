package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "hiring:collection:"

// Ensure RedisStore implements DocumentStore.
var _ DocumentStore = (*RedisStore)(nil)

// RedisStore keeps each collection as one JSON document under a single key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed document store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Read(ctx context.Context, name string) ([]byte, error) {
	doc, err := s.client.Get(ctx, redisKeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis: read collection %s: %w", name, err)
	}
	return doc, nil
}

func (s *RedisStore) Write(ctx context.Context, name string, doc []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+name, doc, 0).Err(); err != nil {
		return fmt.Errorf("redis: write collection %s: %w", name, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
