package lfu

import (
	"container/list"
	"log/slog"
)

// DefaultCapacity is used when Options.Capacity is not positive.
const DefaultCapacity = 128

type Options[K comparable, V any] struct {
	// Capacity is the maximum number of entries held at any time.
	Capacity int

	// OnEvict, if set, is called exactly once for every evicted entry.
	// It is not called for Delete or Clear.
	OnEvict func(key K, val V)

	Log *slog.Logger
}

type entry[K comparable, V any] struct {
	key     K
	val     V
	freq    int
	recency uint64

	bucket *list.Element // element of Cache.buckets
	elem   *list.Element // element of bucket.entries
}

// bucket holds all entries sharing one frequency. Entries are pushed to the
// front when they join, so the back is always the least recently touched.
type bucket[K comparable, V any] struct {
	freq    int
	entries *list.List
}

// Cache is a bounded LFU cache with LRU tie-break. See the package
// documentation for the eviction rule.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*entry[K, V]
	buckets  *list.List // *bucket, ascending by freq
	clock    uint64

	onEvict func(K, V)
	log     *slog.Logger
}

func New[K comparable, V any](opts Options[K, V]) *Cache[K, V] {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	return &Cache[K, V]{
		capacity: opts.Capacity,
		items:    make(map[K]*entry[K, V], opts.Capacity),
		buckets:  list.New(),
		onEvict:  opts.OnEvict,
		log:      opts.Log,
	}
}

// Put inserts or updates key. Updating an existing key bumps its frequency
// and recency. Inserting into a full cache first evicts one entry, which is
// reported through the return values and Options.OnEvict.
//
// A nil key or nil value leaves the cache untouched.
func (c *Cache[K, V]) Put(key K, val V) (victim K, evicted bool) {
	if IsNil(key) || IsNil(val) {
		return victim, false
	}

	if e, ok := c.items[key]; ok {
		e.val = val
		c.touch(e)
		return victim, false
	}

	if len(c.items) >= c.capacity {
		victim, evicted = c.evict()
	}

	c.clock++
	e := &entry[K, V]{key: key, val: val, freq: 1, recency: c.clock}
	c.link(e, c.bucketAfter(nil, 1))
	c.items[key] = e

	return victim, evicted
}

// Get returns the value stored for key and counts the access. A miss,
// including a nil key, changes nothing.
func (c *Cache[K, V]) Get(key K) (val V, ok bool) {
	if IsNil(key) {
		return val, false
	}
	e, ok := c.items[key]
	if !ok {
		return val, false
	}
	c.touch(e)
	return e.val, true
}

// Peek is like Get but does not count the access.
func (c *Cache[K, V]) Peek(key K) (val V, ok bool) {
	if IsNil(key) {
		return val, false
	}
	e, ok := c.items[key]
	if !ok {
		return val, false
	}
	return e.val, true
}

func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.Peek(key)
	return ok
}

// Frequency returns the access count of key.
func (c *Cache[K, V]) Frequency(key K) (int, bool) {
	if IsNil(key) {
		return 0, false
	}
	e, ok := c.items[key]
	if !ok {
		return 0, false
	}
	return e.freq, true
}

// Recency returns the logical timestamp of the last insert, update or hit
// of key.
func (c *Cache[K, V]) Recency(key K) (uint64, bool) {
	if IsNil(key) {
		return 0, false
	}
	e, ok := c.items[key]
	if !ok {
		return 0, false
	}
	return e.recency, true
}

// Delete removes key without notifying OnEvict. It reports whether the key
// was present.
func (c *Cache[K, V]) Delete(key K) bool {
	if IsNil(key) {
		return false
	}
	e, ok := c.items[key]
	if !ok {
		return false
	}
	c.unlink(e)
	delete(c.items, key)
	return true
}

// Clear drops every entry. The clock keeps its value.
func (c *Cache[K, V]) Clear() {
	c.items = make(map[K]*entry[K, V], c.capacity)
	c.buckets.Init()
}

func (c *Cache[K, V]) Len() int { return len(c.items) }

func (c *Cache[K, V]) Cap() int { return c.capacity }

// Clock returns the last timestamp handed out.
func (c *Cache[K, V]) Clock() uint64 { return c.clock }

// Victim returns the key that the next eviction would remove.
func (c *Cache[K, V]) Victim() (key K, ok bool) {
	front := c.buckets.Front()
	if front == nil {
		return key, false
	}
	return front.Value.(*bucket[K, V]).entries.Back().Value.(*entry[K, V]).key, true
}

// Range calls fn for every entry in eviction order, next victim first, until
// fn returns false. It does not count as an access. fn must not modify the
// cache.
func (c *Cache[K, V]) Range(fn func(key K, val V, freq int, recency uint64) bool) {
	for be := c.buckets.Front(); be != nil; be = be.Next() {
		b := be.Value.(*bucket[K, V])
		for ee := b.entries.Back(); ee != nil; ee = ee.Prev() {
			e := ee.Value.(*entry[K, V])
			if !fn(e.key, e.val, e.freq, e.recency) {
				return
			}
		}
	}
}

// Keys returns all keys in eviction order.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	c.Range(func(key K, _ V, _ int, _ uint64) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// touch counts one access of e: frequency and recency both advance and e
// moves to the front of the next bucket.
func (c *Cache[K, V]) touch(e *entry[K, V]) {
	c.clock++
	e.freq++
	e.recency = c.clock

	next := c.bucketAfter(e.bucket, e.freq)
	c.unlink(e)
	c.link(e, next)
}

// evict removes the back entry of the lowest bucket: lowest frequency, then
// lowest recency.
func (c *Cache[K, V]) evict() (key K, ok bool) {
	front := c.buckets.Front()
	if front == nil {
		return key, false
	}
	e := front.Value.(*bucket[K, V]).entries.Back().Value.(*entry[K, V])

	c.unlink(e)
	delete(c.items, e.key)

	c.log.Debug(
		"discard",
		slog.Any("key", e.key),
		slog.Int("freq", e.freq),
		slog.Uint64("recency", e.recency),
	)

	if c.onEvict != nil {
		c.onEvict(e.key, e.val)
	}
	return e.key, true
}

// bucketAfter returns the bucket for freq that directly follows prev (or
// heads the list when prev is nil), creating it if needed.
func (c *Cache[K, V]) bucketAfter(prev *list.Element, freq int) *list.Element {
	next := c.buckets.Front()
	if prev != nil {
		next = prev.Next()
	}
	if next != nil && next.Value.(*bucket[K, V]).freq == freq {
		return next
	}

	b := &bucket[K, V]{freq: freq, entries: list.New()}
	if prev == nil {
		return c.buckets.PushFront(b)
	}
	return c.buckets.InsertAfter(b, prev)
}

func (c *Cache[K, V]) link(e *entry[K, V], be *list.Element) {
	e.bucket = be
	e.elem = be.Value.(*bucket[K, V]).entries.PushFront(e)
}

func (c *Cache[K, V]) unlink(e *entry[K, V]) {
	b := e.bucket.Value.(*bucket[K, V])
	b.entries.Remove(e.elem)
	if b.entries.Len() == 0 {
		c.buckets.Remove(e.bucket)
	}
	e.bucket, e.elem = nil, nil
}
