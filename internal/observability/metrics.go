package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// catalog pipeline. All record methods are nil-safe so components can run
// without metrics in tests.
type Metrics struct {
	CatalogFetches       prometheus.Counter
	CatalogFetchErrors   prometheus.Counter
	CatalogFetchDuration prometheus.Histogram

	// Parser diagnostics.
	RowsExcluded prometheus.Counter

	// Snapshot cache state.
	SnapshotEvents prometheus.Gauge
	CacheLookups   *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.CatalogFetches,
		m.CatalogFetchErrors,
		m.CatalogFetchDuration,
		m.RowsExcluded,
		m.SnapshotEvents,
		m.CacheLookups,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		CatalogFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "earthquakes",
			Name:      "catalog_fetches_total",
			Help:      "Total catalog fetch attempts against the upstream feed.",
		}),
		CatalogFetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "earthquakes",
			Name:      "catalog_fetch_errors_total",
			Help:      "Total catalog fetches that failed with a transport or status error.",
		}),
		CatalogFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "earthquakes",
			Name:      "catalog_fetch_duration_seconds",
			Help:      "Duration of one catalog fetch and parse cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		RowsExcluded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "earthquakes",
			Name:      "catalog_rows_excluded_total",
			Help:      "Catalog rows dropped for token-count mismatch or unparseable fields.",
		}),
		SnapshotEvents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "earthquakes",
			Name:      "snapshot_events",
			Help:      "Number of events in the currently cached catalog snapshot.",
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "earthquakes",
			Name:      "snapshot_cache_lookups_total",
			Help:      "Snapshot cache lookups by result.",
		}, []string{"result"}),
	}
}

// ObserveFetch records the outcome of one catalog fetch attempt.
func (m *Metrics) ObserveFetch(duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.CatalogFetches.Inc()
	m.CatalogFetchDuration.Observe(duration.Seconds())
	if err != nil {
		m.CatalogFetchErrors.Inc()
	}
}

// AddRowsExcluded records rows dropped by the parser.
func (m *Metrics) AddRowsExcluded(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RowsExcluded.Add(float64(n))
}

// SetSnapshotEvents records the size of the cached snapshot.
func (m *Metrics) SetSnapshotEvents(n int) {
	if m == nil {
		return
	}
	m.SnapshotEvents.Set(float64(n))
}

// RecordCacheLookup records a snapshot cache hit or miss.
func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
