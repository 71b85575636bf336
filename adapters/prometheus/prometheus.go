// Package prometheus provides Prometheus implementations of the metrics
// interfaces in core/metrics.
//
//	reg := prometheus.NewRegistry()
//	c := cache.NewLFU(cache.LFUOpts{
//	    Name:    "users",
//	    Metrics: promadapter.NewCacheMetrics(reg),
//	})
package prometheus

// namespace prefixes every metric name registered by this package.
const namespace = "freqcache"
