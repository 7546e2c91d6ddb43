// Package cache holds the byte-oriented stores behind the report cache.
package cache

import (
	"context"
	"time"
)

// Store is a byte cache with per-entry expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
