package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/M1ts0sGitHub/Earthquakes/internal/models"
	"github.com/M1ts0sGitHub/Earthquakes/internal/observability"
)

// Fetcher is the slice of the catalog fetcher the cache depends on.
type Fetcher interface {
	FetchCatalog(ctx context.Context, url string) ([]models.EarthquakeRecord, error)
}

// SnapshotCache is a read-through cache holding exactly one catalog snapshot.
// The fetch targets a single fixed endpoint, so the cache is keyed by nothing
// and only invalidated by time. A snapshot older than the TTL triggers a
// re-fetch on the next lookup.
type SnapshotCache struct {
	fetcher Fetcher
	url     string
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics

	mu        sync.Mutex
	snapshot  []models.EarthquakeRecord
	fetchedAt time.Time
}

// NewSnapshotCache creates a snapshot cache. A nil clock selects the real
// clock; tests inject a fake to advance time deterministically. metrics may
// be nil.
func NewSnapshotCache(fetcher Fetcher, url string, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *SnapshotCache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SnapshotCache{
		fetcher: fetcher,
		url:     url,
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
	}
}

// GetOrFetch returns the cached snapshot while it is fresh, re-fetching once
// it has aged past the TTL. When a re-fetch fails but a previous snapshot
// exists, both the stale snapshot and the error are returned so the caller
// can choose between showing stale data and an error state.
func (c *SnapshotCache) GetOrFetch(ctx context.Context) ([]models.EarthquakeRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if !c.fetchedAt.IsZero() && now.Sub(c.fetchedAt) <= c.ttl {
		c.metrics.RecordCacheLookup(true)
		return c.snapshot, nil
	}

	c.metrics.RecordCacheLookup(false)
	records, err := c.fetcher.FetchCatalog(ctx, c.url)
	if err != nil {
		return c.snapshot, err
	}

	c.snapshot = records
	c.fetchedAt = now
	c.metrics.SetSnapshotEvents(len(records))
	return records, nil
}

// Invalidate discards the cached snapshot so the next lookup re-fetches.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
	c.fetchedAt = time.Time{}
}

// FetchedAt reports when the current snapshot was taken. The zero time means
// no snapshot is held.
func (c *SnapshotCache) FetchedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchedAt
}
