// Package storage provides abstractions for durable key-value snapshots.
package storage

import (
	"context"
)

// Snapshot is a durable string key-value store.
// The session store uses it to persist the logged-in identity across
// restarts. Implementations: SQLite, Redis and in-memory.
type Snapshot interface {
	// Get returns the value stored under key.
	// The boolean is false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the snapshot.
	Close() error
}
