package cache

// Cache is an untyped, bounded key/value cache. Implementations in this
// package are safe for concurrent use.
type Cache interface {
	Get(key string) (any, bool)
	Put(key string, val any)
	Delete(key string)
}

type TypedCache[T any] interface {
	Put(key string, val T)
	Get(key string) (T, bool)
	Delete(key string)
}

type typedCache[T any] struct {
	c Cache
}

func NewTyped[T any](c Cache) TypedCache[T] { return &typedCache[T]{c: c} }

func (t *typedCache[T]) Get(key string) (out T, ok bool) {
	var v any
	v, ok = t.c.Get(key)
	if !ok {
		return out, false
	}

	if out, ok = v.(T); !ok {
		return out, false
	}
	return
}

func (t *typedCache[T]) Put(key string, val T) {
	t.c.Put(key, val)
}

func (t *typedCache[T]) Delete(key string) {
	t.c.Delete(key)
}

var _ TypedCache[any] = (*typedCache[any])(nil)
