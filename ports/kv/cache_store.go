package kv

import (
	"context"

	"github.com/codewandler/freqcache-go/core/cache"
)

// CacheStore is a bounded Store kept in a cache.Cache. Entries pushed out by
// the cache's eviction policy read back as ErrNotFound.
type CacheStore struct {
	c cache.Cache
}

func NewCacheStore(c cache.Cache) *CacheStore {
	return &CacheStore{c: c}
}

func (s *CacheStore) Put(ctx context.Context, key string, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.c.Put(key, entry)
	return nil
}

func (s *CacheStore) Get(ctx context.Context, key string) (entry Entry, err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	v, ok := s.c.Get(key)
	if !ok {
		return entry, ErrNotFound
	}
	entry, ok = v.(Entry)
	if !ok {
		return entry, ErrNotFound
	}
	return entry, nil
}

func (s *CacheStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.c.Delete(key)
	return nil
}

var _ Store = (*CacheStore)(nil)
