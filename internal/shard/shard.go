package shard

import (
	"hash/fnv"

	"github.com/codewandler/freqcache-go/internal/hrw"
)

type Func func(key string) int

func ForKey(key string, shardCount int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(shardCount))
}

// Sharder maps a key to a shard index in [0, Count()).
type Sharder interface {
	GetShardForKey(key string) int
	Count() int
}

type fnSharder struct {
	fn    Func
	count int
}

func NewSharder(count int, fn Func) Sharder {
	return &fnSharder{fn: fn, count: count}
}

func (s *fnSharder) GetShardForKey(key string) int { return s.fn(key) }
func (s *fnSharder) Count() int                    { return s.count }

// Distributed spreads keys by FNV-1a modulo count.
func Distributed(count int) Sharder {
	return NewSharder(count, func(key string) int {
		return ForKey(key, count)
	})
}

// Rendezvous spreads keys by highest-random-weight hashing, which moves
// fewer keys than Distributed when count changes.
func Rendezvous(count int, seed string) Sharder {
	return NewSharder(count, func(key string) int {
		return hrw.Best(key, count, seed)
	})
}
