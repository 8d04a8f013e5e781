package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Memory is an in-process cache backed by ristretto. It is safe for
// concurrent use.
type Memory struct {
	c *ristretto.Cache
}

// NewMemory creates a ristretto cache bounded to maxBytes of values.
func NewMemory(maxBytes int64) (*Memory, error) {
	if maxBytes <= 0 {
		maxBytes = 64 << 20
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}
	return &Memory{c: c}, nil
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	return b, ok, nil
}

// Set admits the value asynchronously; a subsequent Get may still miss
// until the write buffer drains.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.c.SetWithTTL(key, value, int64(len(value)), ttl)
	return nil
}

// Wait blocks until pending writes are applied.
func (m *Memory) Wait() { m.c.Wait() }

func (m *Memory) Close() error {
	m.c.Close()
	return nil
}
