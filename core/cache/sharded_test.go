package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewandler/freqcache-go/internal/shard"
)

func TestSharded_RoutesAndSums(t *testing.T) {
	s := NewSharded(ShardedOpts{Shards: 4, Size: 400, Sharder: shard.Rendezvous(4, "test")})
	defer s.Close()

	for i := 0; i < 20; i++ {
		s.Put(fmt.Sprintf("k%d", i), i)
	}
	for i := 0; i < 20; i++ {
		val, ok := s.Get(fmt.Sprintf("k%d", i))
		require.True(t, ok)
		assert.Equal(t, i, val)
	}
	s.Delete("k0")
	_, ok := s.Get("k0")
	assert.False(t, ok)

	stats := s.Stats()
	assert.Equal(t, 19, s.Len())
	assert.Equal(t, 19, stats.Len)
	assert.Equal(t, 400, stats.Capacity)
	assert.Equal(t, uint64(20), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestSharded_EvictsWithinShard(t *testing.T) {
	var discarded []string
	// Keys starting with "a" go to shard 0, everything else to shard 1.
	sharder := shard.NewSharder(2, func(key string) int {
		if key[0] == 'a' {
			return 0
		}
		return 1
	})
	s := NewSharded(ShardedOpts{
		Shards:  2,
		Size:    4,
		Sharder: sharder,
		OnEvict: func(key string, _ any) { discarded = append(discarded, key) },
	})
	defer s.Close()

	s.Put("b1", 1)
	s.Put("a1", 1)
	s.Put("a2", 1)
	s.Get("a1")
	s.Put("a3", 1) // shard 0 is full, a2 is its weakest

	assert.Equal(t, []string{"a2"}, discarded)
	assert.Equal(t, 3, s.Len())
}

func TestSharded_SharderDecidesShardCount(t *testing.T) {
	for _, shards := range []int{0, 2} {
		s := NewSharded(ShardedOpts{Shards: shards, Size: 80, Sharder: shard.Distributed(8)})

		require.Len(t, s.shards, 8)
		for i := 0; i < 100; i++ {
			key := fmt.Sprintf("k%d", i)
			s.Put(key, i)
			_, ok := s.Get(key)
			assert.True(t, ok, key)
		}
		assert.Equal(t, 80, s.Stats().Capacity)
		s.Close()
	}
}

func TestSharded_ShardsCappedBySize(t *testing.T) {
	s := NewSharded(ShardedOpts{Shards: 8, Size: 4})
	defer s.Close()

	require.Len(t, s.shards, 4)
	assert.Equal(t, 4, s.Stats().Capacity)
}
