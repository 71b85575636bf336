// Package cache provides concurrency-safe bounded key/value caches.
//
// The package defines two interfaces:
//
//   - [Cache]: Untyped cache storing values as any
//   - [TypedCache]: Generic type-safe wrapper via [NewTyped]
//
// # Implementations
//
// [LFU] evicts the least frequently used entry, breaking ties by least recent
// use. It runs the [lfu.Cache] engine on a background goroutine, so every call
// is atomic without external locking.
//
//	c := cache.NewLFU(cache.LFUOpts{
//	    Size:    1000,
//	    OnEvict: func(key string, _ any) { log.Printf("DISCARD: %s", key) },
//	})
//	defer c.Close()
//
//	c.Put("key", value)
//	if val, ok := c.Get("key"); ok {
//	    // Use val
//	}
//
// [Sharded] spreads keys over several [LFU] caches. [MRU] evicts the most
// recently used entry instead. [Nop] caches nothing.
//
// # Read-Through Loading
//
// [Loading] fills misses from a [LoadFunc] and deduplicates concurrent loads
// of the same key:
//
//	users := cache.NewLoading(c, func(ctx context.Context, id string) (any, error) {
//	    return db.GetUser(ctx, id)
//	})
//	u, err := users.Get(ctx, "user:123")
//
// # Type-Safe Usage
//
// Use [NewTyped] for compile-time type safety:
//
//	userCache := cache.NewTyped[*User](c)
//	userCache.Put("user:123", user)
//	if user, ok := userCache.Get("user:123"); ok {
//	    // user is *User, no type assertion needed
//	}
package cache
