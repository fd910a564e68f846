// Package cache stores rendered artifacts between runs.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: JSON entries on local disk, used by the CLI
//   - [RedisCache]: a shared Redis instance, used by the server
//   - [NullCache]: stores nothing, used when caching is disabled
//
// Keys come from a [Keyer] so that callers never build key strings by hand.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
// A miss is reported as (nil, false, nil); errors are reserved for
// backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
