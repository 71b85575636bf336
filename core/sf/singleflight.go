package sf

import "golang.org/x/sync/singleflight"

// Singleflight deduplicates concurrent function calls with the same key.
type Singleflight[T any] struct {
	group singleflight.Group
}

// Do executes fn for the given key, deduplicating concurrent calls. Callers
// that joined an in-flight call get its result, including its error.
func (s *Singleflight[T]) Do(key string, fn func() (T, error)) (out T, err error) {
	v, err, _ := s.group.Do(key, func() (any, error) {
		return fn()
	})
	if err != nil {
		return out, err
	}
	out, _ = v.(T)
	return out, nil
}

// Forget makes the next Do for key execute fn again instead of joining a
// call that is still in flight.
func (s *Singleflight[T]) Forget(key string) {
	s.group.Forget(key)
}

// New creates a new Singleflight instance for type T.
func New[T any]() *Singleflight[T] {
	return &Singleflight[T]{}
}
