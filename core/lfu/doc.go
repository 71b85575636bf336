// Package lfu implements a bounded key/value cache with least-frequently-used
// eviction and a least-recently-used tie-break among equally frequent keys.
//
// Every key carries a frequency counter and a recency marker. The counter
// starts at 1 on insert and grows by one on every update via [Cache.Put] and
// every hit via [Cache.Get]. The recency marker is taken from a per-instance
// logical clock that advances by one on each of those events, so no two keys
// ever share a marker.
//
// When a new key arrives at a full cache, the victim is the key with the lowest
// frequency; among keys with that frequency, the one touched least recently.
//
//	c := lfu.New(lfu.Options[int, string]{Capacity: 2})
//	c.Put(1, "A")
//	c.Put(2, "B")
//	c.Get(1)
//	victim, evicted := c.Put(3, "C") // victim == 2, evicted == true
//
// # Nil Handling
//
// Nil keys and nil values are ignored: [Cache.Put] is a no-op and [Cache.Get]
// reports a miss. A value counts as nil when it is an untyped nil or a nil
// pointer, map, slice, channel, func or interface.
//
// # Concurrency
//
// A [Cache] is not safe for concurrent use. Wrap it behind a single owner, as
// the LFU type in package cache does, when it is shared between goroutines.
package lfu
