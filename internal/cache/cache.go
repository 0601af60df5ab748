// Package cache provides a small key/value cache with pluggable backends.
//
// Backends:
//   - memory: in-process, backed by go-cache (default, development and tests)
//   - redis: shared between console instances
//
// Values are opaque strings; callers own their encoding.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Client defines the cache operations.
type Client interface {
	// Get returns ErrNotFound when the key is absent or expired.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value; a ttl of 0 means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	// Incr adds one to the counter at key and returns the new value. A key
	// that did not exist starts at 1 and expires after ttl.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	Close() error

	// Driver returns the backend name ("memory" or "redis").
	Driver() string
}

// Config selects and configures a backend.
type Config struct {
	Driver   string // "memory" | "redis"
	Addr     string // redis host:port
	Password string
	DB       int
	Prefix   string // prepended to every key as "<prefix>:"

	// DefaultTTL and CleanupInterval tune the memory backend.
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
}

// ErrNotFound reports a cache miss.
var ErrNotFound = errors.New("cache: key not found")

// IsNotFound reports whether err is a cache miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// New builds a client for cfg.Driver.
func New(cfg Config) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "memory", "":
		return NewMemory(cfg), nil
	case "redis":
		return NewRedis(cfg)
	default:
		return nil, fmt.Errorf("cache: unknown driver %q", cfg.Driver)
	}
}

func prefixed(prefix, k string) string {
	if prefix == "" {
		return k
	}
	return prefix + ":" + k
}
