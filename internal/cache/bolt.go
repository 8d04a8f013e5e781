package cache

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var bucketName = []byte("bridges")

// Bolt is a persistent cache in a single bbolt file. Each value is stored
// behind an 8-byte big-endian expiry in Unix nanoseconds (0 = never).
type Bolt struct {
	db  *bbolt.DB
	now func() time.Time
}

// NewBolt opens (or creates) the cache file at path.
func NewBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt cache: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketName); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Bolt{db: db, now: time.Now}, nil
}

func (b *Bolt) Get(_ context.Context, key string) ([]byte, bool, error) {
	var (
		out     []byte
		found   bool
		expired bool
	)
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if len(v) < 8 {
			return nil
		}
		exp := int64(binary.BigEndian.Uint64(v[:8]))
		if exp != 0 && b.now().UnixNano() > exp {
			expired = true
			return nil
		}
		out = make([]byte, len(v)-8)
		copy(out, v[8:])
		found = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if expired {
		err = b.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket(bucketName).Delete([]byte(key))
		})
		return nil, false, err
	}
	return out, found, nil
}

func (b *Bolt) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = b.now().Add(ttl).UnixNano()
	}
	buf := make([]byte, 8+len(value))
	binary.BigEndian.PutUint64(buf[:8], uint64(exp))
	copy(buf[8:], value)

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), buf)
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
