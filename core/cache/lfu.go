package cache

import (
	"fmt"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codewandler/freqcache-go/core/lfu"
	"github.com/codewandler/freqcache-go/core/metrics"
)

type LFUOpts struct {
	// Size is the capacity. Defaults to 128.
	Size int

	// Name labels logs and metrics. Defaults to "lfu-<random id>".
	Name string

	// OnEvict is called once per evicted entry. It runs on the cache's owner
	// goroutine and must not call back into the same cache.
	OnEvict func(key string, val any)

	Metrics metrics.CacheMetrics
	Log     *slog.Logger
}

// Entry describes one cached key as reported by LFU.Entries.
type Entry struct {
	Key       string
	Value     any
	Frequency int
	Recency   uint64
}

type lfuState struct {
	engine *lfu.Cache[string, any]
	stats  Stats
}

// LFU is a least-frequently-used cache with least-recently-used tie-break,
// safe for concurrent use. A single goroutine owns the underlying
// [lfu.Cache]; every call is executed there as one indivisible step.
type LFU struct {
	name    string
	metrics metrics.CacheMetrics
	s       *serial[*lfuState]
}

func NewLFU(opts LFUOpts) *LFU {
	if opts.Size <= 0 {
		opts.Size = lfu.DefaultCapacity
	}
	if opts.Name == "" {
		opts.Name = fmt.Sprintf("lfu-%s", gonanoid.Must(6))
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NopCacheMetrics()
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	l := &LFU{
		name:    opts.Name,
		metrics: opts.Metrics,
	}

	state := &lfuState{}
	state.engine = lfu.New(lfu.Options[string, any]{
		Capacity: opts.Size,
		Log:      opts.Log.With(slog.String("cache", opts.Name)),
		OnEvict: func(key string, val any) {
			state.stats.Evictions++
			l.metrics.Evicted(l.name)
			if opts.OnEvict != nil {
				opts.OnEvict(key, val)
			}
		},
	})
	l.s = newSerial(state)

	return l
}

func (l *LFU) Name() string { return l.name }

func (l *LFU) Get(key string) (val any, ok bool) {
	l.s.do(func(st *lfuState) {
		val, ok = st.engine.Get(key)
		if ok {
			st.stats.Hits++
			l.metrics.Hit(l.name)
		} else {
			st.stats.Misses++
			l.metrics.Miss(l.name)
		}
	})
	return val, ok
}

// Put inserts or updates key. A nil value is ignored.
func (l *LFU) Put(key string, val any) {
	l.s.do(func(st *lfuState) {
		st.engine.Put(key, val)
		l.metrics.Size(l.name, st.engine.Len())
	})
}

func (l *LFU) Delete(key string) {
	l.s.do(func(st *lfuState) {
		if st.engine.Delete(key) {
			l.metrics.Size(l.name, st.engine.Len())
		}
	})
}

// Frequency returns the access count of key without counting an access.
func (l *LFU) Frequency(key string) (freq int, ok bool) {
	l.s.do(func(st *lfuState) {
		freq, ok = st.engine.Frequency(key)
	})
	return freq, ok
}

func (l *LFU) Len() (n int) {
	l.s.do(func(st *lfuState) {
		n = st.engine.Len()
	})
	return n
}

func (l *LFU) Stats() (s Stats) {
	l.s.do(func(st *lfuState) {
		s = st.stats
		s.Len = st.engine.Len()
		s.Capacity = st.engine.Cap()
	})
	return s
}

// Entries returns every entry in eviction order, next victim first.
func (l *LFU) Entries() (out []Entry) {
	l.s.do(func(st *lfuState) {
		out = make([]Entry, 0, st.engine.Len())
		st.engine.Range(func(key string, val any, freq int, recency uint64) bool {
			out = append(out, Entry{Key: key, Value: val, Frequency: freq, Recency: recency})
			return true
		})
	})
	return out
}

// Close stops the owner goroutine and releases the entries. Later calls are
// no-ops and Get always misses.
func (l *LFU) Close() {
	l.s.close()
}

var _ Cache = (*LFU)(nil)
