package resilience

import "golang.org/x/sync/singleflight"

// SingleFlight deduplicates concurrent calls for the same key. Callers that
// arrive while a call is running wait for it and share its result.
type SingleFlight[T any] struct {
	group singleflight.Group
}

// Do runs fn once per in-flight key. shared reports whether the result was
// handed to more than one caller.
func (g *SingleFlight[T]) Do(key string, fn func() (T, error)) (value T, shared bool, err error) {
	raw, err, shared := g.group.Do(key, func() (any, error) {
		return fn()
	})
	if raw != nil {
		value = raw.(T)
	}
	return value, shared, err
}

// Forget drops a key so the next Do starts a fresh call.
func (g *SingleFlight[T]) Forget(key string) {
	g.group.Forget(key)
}
