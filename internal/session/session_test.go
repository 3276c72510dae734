package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNewTokenIsOpaqueAndUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := NewToken()
		if token == "" {
			t.Fatal("empty token")
		}
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Set(ctx, "tok", []byte(`{"lastSeen":"x"}`), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}

	data, ok, err := s.Get(ctx, "tok")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(data) != `{"lastSeen":"x"}` {
		t.Fatalf("data = %q", data)
	}

	if err := s.Delete(ctx, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, err := s.Get(ctx, "tok"); err != nil || ok {
		t.Fatalf("deleted token still readable: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	if err := s.Set(ctx, "tok", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	if _, ok, _ := s.Get(ctx, "tok"); !ok {
		t.Fatal("token expired before its TTL")
	}

	clock = clock.Add(2 * time.Minute)
	if _, ok, _ := s.Get(ctx, "tok"); ok {
		t.Fatal("token readable past its TTL")
	}
}

func TestMemoryStoreSweepOnWrite(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	if err := s.Set(ctx, "old", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	clock = clock.Add(time.Hour)
	if err := s.Set(ctx, "new", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	s.mu.Lock()
	_, oldPresent := s.entries["old"]
	s.mu.Unlock()
	if oldPresent {
		t.Fatal("expired entry survived the write-time sweep")
	}
}

// fakeRedis is an in-process stand-in for the narrow redis surface RedisStore uses.
type fakeRedis struct {
	data map[string]string
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRedis{data: map[string]string{}}
	s := NewRedisStore(fake)

	if err := s.Set(ctx, "tok", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := fake.data[keyPrefix+"tok"]; !ok {
		t.Fatal("session not stored under the shared prefix")
	}

	data, ok, err := s.Get(ctx, "tok")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(data) != "payload" {
		t.Fatalf("data = %q", data)
	}

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing token should be a clean miss: ok=%v err=%v", ok, err)
	}

	if err := s.Delete(ctx, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "tok"); ok {
		t.Fatal("deleted token still readable")
	}
}

func TestNewFallsBackToMemoryWithoutRedis(t *testing.T) {
	s := New(context.Background(), nil, nil)
	if _, ok := s.(*MemoryStore); !ok {
		t.Fatalf("expected a MemoryStore, got %T", s)
	}
}
