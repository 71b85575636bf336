// Package metrics provides abstract metrics interfaces that allow pluggable
// instrumentation backends (Prometheus, StatsD, etc.) without coupling the
// cache packages to any specific implementation.
package metrics

// CacheMetrics records the behavior of a named cache. Implementations must be
// safe for concurrent use, since sharded caches report from several
// goroutines at once.
type CacheMetrics interface {
	// Hit counts a Get that found its key.
	Hit(cache string)
	// Miss counts a Get that did not find its key.
	Miss(cache string)
	// Evicted counts one entry removed to make room for another.
	Evicted(cache string)
	// Size reports the current number of entries.
	Size(cache string, n int)
}
