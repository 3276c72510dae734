// Package session provides the session store the storage layer hands to its
// environment: Redis-backed when the server is reachable, in-memory
// otherwise. The selection policy matches the storage facade's stance of
// degrading rather than failing.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "gofolio:session:"

// Store is a TTL-bounded token store.
type Store interface {
	Get(ctx context.Context, token string) ([]byte, bool, error)
	Set(ctx context.Context, token string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}

// NewToken issues an opaque session token.
func NewToken() string {
	return uuid.NewString()
}

// sessionRedis is the slice of the redis client the store consumes.
type sessionRedis interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps sessions in Redis under a shared prefix.
type RedisStore struct {
	client sessionRedis
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client sessionRedis) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, token string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get session: %w", err)
	}
	return data, true, nil
}

func (s *RedisStore) Set(ctx context.Context, token string, data []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+token, data, ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory with lazy expiry. Sessions do
// not survive a restart; acceptable for fallback duty.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: map[string]memoryEntry{},
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, token string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return nil, false, nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, token)
		return nil, false, nil
	}
	return e.data, true, nil
}

func (s *MemoryStore) Set(_ context.Context, token string, data []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{data: data, expiresAt: s.now().Add(ttl)}
	s.sweepLocked()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// sweepLocked drops expired entries opportunistically on writes.
func (s *MemoryStore) sweepLocked() {
	now := s.now()
	for token, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, token)
		}
	}
}

// New picks the backend: Redis when a ping succeeds, memory otherwise.
func New(ctx context.Context, client *redis.Client, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.Default()
	}
	if client != nil {
		if err := client.Ping(ctx).Err(); err == nil {
			logger.Info("session store backed by redis")
			return NewRedisStore(client)
		} else {
			logger.Warn("redis unreachable, sessions held in memory", slog.Any("error", err))
		}
	}
	return NewMemoryStore()
}
