package future

import (
	"github.com/dmitrymomot/pollkit/pkg/wakers"
)

// Future is a value that may not have finished computing yet. Poll attempts
// to resolve it: if the value is available it is returned with done == true,
// otherwise the implementation must arrange for w to be woken once progress
// is possible and return done == false.
//
// Poll must never block. Only the most recent Waker passed to Poll needs to
// be woken. Once a Future has reported done, it must not be polled again.
type Future[T any] interface {
	Poll(w wakers.Waker) (value T, done bool)
}

// PollFunc adapts a function to the Future interface.
type PollFunc[T any] func(w wakers.Waker) (T, bool)

// Poll calls f.
func (f PollFunc[T]) Poll(w wakers.Waker) (T, bool) { return f(w) }

type readyFuture[T any] struct{ value T }

func (f readyFuture[T]) Poll(wakers.Waker) (T, bool) { return f.value, true }

// Ready returns a Future that completes with v on its first poll.
func Ready[T any](v T) Future[T] { return readyFuture[T]{value: v} }

type neverFuture[T any] struct{}

func (neverFuture[T]) Poll(wakers.Waker) (T, bool) {
	var zero T
	return zero, false
}

// Never returns a Future that never completes. It does not retain the Waker,
// since no progress will ever be signalled. Useful for tests and for holding
// a join mid-flight.
func Never[T any]() Future[T] { return neverFuture[T]{} }

// Releaser is implemented by result values that hold resources requiring an
// explicit release when a join is cancelled after the value was produced but
// before the aggregate was handed out. Values that do not implement Releaser
// are simply dropped for the garbage collector.
type Releaser interface {
	Release()
}
