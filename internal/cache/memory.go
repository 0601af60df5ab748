package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultMemoryTTL     = 2 * time.Minute
	defaultMemoryCleanup = time.Minute
)

// memoryClient implements Client on top of go-cache.
type memoryClient struct {
	prefix string
	c      *gocache.Cache

	incrMu sync.Mutex
}

// NewMemory builds an in-process cache. Zero durations in cfg fall back to
// a 2m default TTL and a 1m cleanup sweep.
func NewMemory(cfg Config) Client {
	ttl := cfg.DefaultTTL
	if ttl <= 0 {
		ttl = defaultMemoryTTL
	}
	sweep := cfg.CleanupInterval
	if sweep <= 0 {
		sweep = defaultMemoryCleanup
	}
	return &memoryClient{prefix: cfg.Prefix, c: gocache.New(ttl, sweep)}
}

func (m *memoryClient) Get(_ context.Context, key string) (string, error) {
	v, ok := m.c.Get(prefixed(m.prefix, key))
	if !ok {
		return "", ErrNotFound
	}
	s, _ := v.(string)
	return s, nil
}

func (m *memoryClient) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	m.c.Set(prefixed(m.prefix, key), value, ttl)
	return nil
}

func (m *memoryClient) Delete(_ context.Context, key string) error {
	m.c.Delete(prefixed(m.prefix, key))
	return nil
}

func (m *memoryClient) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	k := prefixed(m.prefix, key)
	m.incrMu.Lock()
	defer m.incrMu.Unlock()
	if n, err := m.c.IncrementInt64(k, 1); err == nil {
		return n, nil
	}
	// absent or expired
	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	m.c.Set(k, int64(1), ttl)
	return 1, nil
}

func (m *memoryClient) Ping(context.Context) error { return nil }

func (m *memoryClient) Close() error {
	m.c.Flush()
	return nil
}

func (m *memoryClient) Driver() string { return "memory" }
