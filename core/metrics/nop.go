package metrics

// nopCacheMetrics is a no-op implementation of CacheMetrics.
type nopCacheMetrics struct{}

func (nopCacheMetrics) Hit(string)       {}
func (nopCacheMetrics) Miss(string)      {}
func (nopCacheMetrics) Evicted(string)   {}
func (nopCacheMetrics) Size(string, int) {}

// NopCacheMetrics returns a no-op CacheMetrics.
func NopCacheMetrics() CacheMetrics { return nopCacheMetrics{} }
