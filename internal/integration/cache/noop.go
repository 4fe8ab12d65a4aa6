// Package cache implements the report cache on Redis.
package cache

import (
	"context"
	"time"

	"github.com/deolhonanota/backend/internal/application/adapter"
)

// noopReportCache is the cache used when no Redis address is configured.
// Every read misses, so reports are recomputed on each request.
type noopReportCache struct{}

// NewNoopReportCache creates a cache that stores nothing.
func NewNoopReportCache() adapter.ReportCache {
	return noopReportCache{}
}

func (noopReportCache) Get(context.Context, string) ([]byte, bool) {
	return nil, false
}

func (noopReportCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (noopReportCache) InvalidateAll(context.Context) error {
	return nil
}
