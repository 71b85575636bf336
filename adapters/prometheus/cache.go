package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/freqcache-go/core/metrics"
)

// cacheMetrics implements metrics.CacheMetrics using Prometheus.
type cacheMetrics struct {
	hits      *prometheus.CounterVec
	misses    *prometheus.CounterVec
	evictions *prometheus.CounterVec
	entries   *prometheus.GaugeVec
}

// NewCacheMetrics creates a new Prometheus implementation of CacheMetrics.
// All series are labelled with the cache name.
func NewCacheMetrics(reg prometheus.Registerer) metrics.CacheMetrics {
	m := &cacheMetrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of cache hits",
		}, []string{"cache"}),

		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of cache misses",
		}, []string{"cache"}),

		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Total number of entries evicted to make room",
		}, []string{"cache"}),

		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Current number of cached entries",
		}, []string{"cache"}),
	}

	reg.MustRegister(
		m.hits,
		m.misses,
		m.evictions,
		m.entries,
	)

	return m
}

func (m *cacheMetrics) Hit(cache string)     { m.hits.WithLabelValues(cache).Inc() }
func (m *cacheMetrics) Miss(cache string)    { m.misses.WithLabelValues(cache).Inc() }
func (m *cacheMetrics) Evicted(cache string) { m.evictions.WithLabelValues(cache).Inc() }

func (m *cacheMetrics) Size(cache string, n int) {
	m.entries.WithLabelValues(cache).Set(float64(n))
}

var _ metrics.CacheMetrics = (*cacheMetrics)(nil)
