package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// RedisStateStore persists each session's state as a JSON string under a
// single prefixed key.
type RedisStateStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStateStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *RedisStateStore) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *RedisStateStore) Load(ctx context.Context, sessionID string) (*PersistedState, error) {
	raw, err := s.rdb.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}
	return decodeState([]byte(raw)), nil
}

func (s *RedisStateStore) Save(ctx context.Context, sessionID string, state *models.AppState) error {
	data, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}
