package cache

import (
	"context"
	"errors"

	"github.com/codewandler/freqcache-go/core/lfu"
	"github.com/codewandler/freqcache-go/core/sf"
)

// ErrNilValue is returned by Loading.Get when the loader returns a nil value
// (see lfu.IsNil) without an error. Nil values are never cached.
var ErrNilValue = errors.New("cache: loader returned nil value")

// LoadFunc produces the value for a key that is not cached.
type LoadFunc func(ctx context.Context, key string) (any, error)

// Loading is a read-through cache. On a miss it calls the loader once per key,
// however many goroutines miss concurrently, and stores the result.
type Loading struct {
	c     Cache
	load  LoadFunc
	group *sf.Singleflight[any]
}

// NewLoading wraps c. A nil c gives a loader that only deduplicates
// concurrent loads and never stores.
func NewLoading(c Cache, load LoadFunc) *Loading {
	if c == nil {
		c = NewNop()
	}
	return &Loading{c: c, load: load, group: sf.New[any]()}
}

func (l *Loading) Get(ctx context.Context, key string) (any, error) {
	if v, ok := l.c.Get(key); ok {
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return l.group.Do(key, func() (any, error) {
		v, err := l.load(ctx, key)
		if err != nil {
			return nil, err
		}
		if lfu.IsNil(v) {
			return nil, ErrNilValue
		}
		l.c.Put(key, v)
		return v, nil
	})
}

// Cache returns the wrapped cache.
func (l *Loading) Cache() Cache { return l.c }
