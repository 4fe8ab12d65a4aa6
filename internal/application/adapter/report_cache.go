// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// ReportCache defines the interface for caching rendered report payloads.
// Reports are pure derivations of the receipt and prefix collections, so any
// mutation of either collection must invalidate all report entries.
type ReportCache interface {
	// Get retrieves a cached payload by key. The second return value is
	// false on a miss; cache failures are reported as misses, never errors.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a payload under the key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// InvalidateAll removes every cached report entry.
	InvalidateAll(ctx context.Context) error
}
