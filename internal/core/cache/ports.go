package cache

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when the key is absent or expired.
var ErrKeyNotFound = errors.New("key not found")

// Cache defines the key-value store operations following hexagonal architecture.
// Carts, draft snapshots, contact prefill and order history all live behind this port.
// Implemented by Redis (RedisAdapter) and SQLite (SQLiteAdapter).
type Cache interface {
	// Get retrieves a value by key.
	// Returns an error wrapping ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the specified key and TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// SetIfAbsent stores the value only if the key does not exist yet.
	// It reports whether the value was stored.
	SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)

	// Delete removes a value by key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteIfEquals removes the key only while it still holds value.
	// It reports whether the key was removed.
	DeleteIfEquals(ctx context.Context, key string, value []byte) (bool, error)

	// Ping checks if the store is reachable.
	Ping(ctx context.Context) error

	// Close closes the store connection.
	Close() error
}
