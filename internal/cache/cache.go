// Package cache stores serialized lookup results for the bridges. The
// policies are those of the backing libraries; nothing here adds its own.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value cache with per-entry TTL.
type Cache interface {
	// Get returns the cached value and true, or false when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Close releases the backing resources.
	Close() error
}

// Config selects a backend.
type Config struct {
	Backend  string
	Path     string
	MaxBytes int64
}

// Open builds the configured backend: "memory", "bolt" or "none".
func Open(cfg Config) (Cache, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemory(cfg.MaxBytes)
	case "bolt":
		return NewBolt(cfg.Path)
	case "none":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// GetJSON decodes a cached JSON value into out. A nil cache always misses.
// Undecodable entries count as misses.
func GetJSON(ctx context.Context, c Cache, key string, out any) bool {
	if c == nil {
		return false
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal(b, out) == nil
}

// SetJSON encodes v and stores it. A nil cache is a no-op.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, b, ttl)
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Nop) Close() error { return nil }
