// Package sf provides a generic single-flight mechanism for deduplicating
// concurrent function calls with the same key.
//
// If multiple goroutines call [Singleflight.Do] with the same key while a
// call is in flight, only the first executes the function; the others block
// until it completes and receive the same result.
//
// The cache package uses it to load a missing key once, no matter how many
// readers miss on it at the same time:
//
//	group := sf.New[*User]()
//	user, err := group.Do("user:123", func() (*User, error) {
//	    return db.GetUser(ctx, "123")
//	})
package sf
