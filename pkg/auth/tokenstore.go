package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// RedisTokenStore keeps sessions in Redis with the TTL enforced by the
// server, so tokens survive process restarts and expire on their own.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+token, "1", ttl).Err()
}

func (s *RedisTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	_, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}
	return true, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

// MemoryTokenStore is an in-process store for tests and single-node
// development runs.
type MemoryTokenStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{expires: make(map[string]time.Time)}
}

func (s *MemoryTokenStore) Save(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expires[token] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) Exists(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deadline, ok := s.expires[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(s.expires, token)
		return false, nil
	}
	return true, nil
}

func (s *MemoryTokenStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.expires, token)
	return nil
}
