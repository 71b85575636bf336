package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewandler/freqcache-go/core/cache"
)

func TestNewCacheMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCacheMetrics(reg)

	require.NotNil(t, m)

	m.Hit("users")
	m.Hit("users")
	m.Miss("users")
	m.Evicted("users")
	m.Size("users", 3)

	// Verify metrics were registered
	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}

	assert.True(t, names["freqcache_cache_hits_total"])
	assert.True(t, names["freqcache_cache_misses_total"])
	assert.True(t, names["freqcache_cache_evictions_total"])
	assert.True(t, names["freqcache_cache_entries"])

	cm := m.(*cacheMetrics)
	assert.Equal(t, 2.0, testutil.ToFloat64(cm.hits.WithLabelValues("users")))
	assert.Equal(t, 3.0, testutil.ToFloat64(cm.entries.WithLabelValues("users")))
}

func TestCacheMetrics_WiredIntoLFU(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCacheMetrics(reg).(*cacheMetrics)

	c := cache.NewLFU(cache.LFUOpts{Size: 2, Name: "scenario", Metrics: m})
	defer c.Close()

	c.Put("1", "A")
	c.Put("2", "B")
	c.Get("1")
	c.Put("3", "C")
	c.Get("2")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.hits.WithLabelValues("scenario")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.misses.WithLabelValues("scenario")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.evictions.WithLabelValues("scenario")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.entries.WithLabelValues("scenario")))
}
