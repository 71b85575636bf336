package cache

import (
	"fmt"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codewandler/freqcache-go/core/metrics"
	"github.com/codewandler/freqcache-go/internal/shard"
)

type ShardedOpts struct {
	// Shards is the number of independent LFU caches. Defaults to 16 and
	// never exceeds Size. Ignored when Sharder is set.
	Shards int

	// Size is the total capacity, split evenly and rounded up per shard, so
	// the total can exceed Size by less than one entry per shard.
	// Defaults to 128 per shard.
	Size int

	// Sharder picks the shard for a key. Defaults to shard.Distributed.
	// When set, its Count decides the number of shards.
	Sharder shard.Sharder

	Name    string
	OnEvict func(key string, val any)
	Metrics metrics.CacheMetrics
	Log     *slog.Logger
}

// Sharded spreads keys over several LFU caches so that unrelated keys do not
// contend on one owner goroutine. Eviction is decided per shard: the victim is
// the least frequently used entry of the shard the new key lands in.
type Sharded struct {
	shards  []*LFU
	sharder shard.Sharder
}

func NewSharded(opts ShardedOpts) *Sharded {
	if opts.Sharder != nil {
		opts.Shards = opts.Sharder.Count()
	} else {
		if opts.Shards <= 0 {
			opts.Shards = 16
		}
		if opts.Size > 0 && opts.Shards > opts.Size {
			opts.Shards = opts.Size
		}
		opts.Sharder = shard.Distributed(opts.Shards)
	}
	if opts.Name == "" {
		opts.Name = fmt.Sprintf("sharded-%s", gonanoid.Must(6))
	}

	perShard := 0
	if opts.Size > 0 {
		perShard = (opts.Size + opts.Shards - 1) / opts.Shards
	}

	s := &Sharded{
		shards:  make([]*LFU, opts.Shards),
		sharder: opts.Sharder,
	}
	for i := range s.shards {
		s.shards[i] = NewLFU(LFUOpts{
			Size:    perShard,
			Name:    fmt.Sprintf("%s-%d", opts.Name, i),
			OnEvict: opts.OnEvict,
			Metrics: opts.Metrics,
			Log:     opts.Log,
		})
	}
	return s
}

func (s *Sharded) shardFor(key string) *LFU {
	return s.shards[s.sharder.GetShardForKey(key)]
}

func (s *Sharded) Get(key string) (any, bool) { return s.shardFor(key).Get(key) }

func (s *Sharded) Put(key string, val any) { s.shardFor(key).Put(key, val) }

func (s *Sharded) Delete(key string) { s.shardFor(key).Delete(key) }

func (s *Sharded) Len() (n int) {
	for _, l := range s.shards {
		n += l.Len()
	}
	return n
}

// Stats sums the counters of all shards.
func (s *Sharded) Stats() (out Stats) {
	for _, l := range s.shards {
		out = out.add(l.Stats())
	}
	return out
}

func (s *Sharded) Close() {
	for _, l := range s.shards {
		l.Close()
	}
}

var _ Cache = (*Sharded)(nil)
