package async

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/pollkit/pkg/wakers"
)

// Result carries the outcome of a completed Task. Err is the error returned
// by the task function, or the context error if the task was cancelled before
// it started.
type Result[T any] struct {
	Value T
	Err   error
}

// Task represents the eventual result of a computation running in its own
// goroutine. It implements future.Future[Result[T]].
type Task[T any] struct {
	mu     sync.Mutex
	waker  wakers.Waker
	result Result[T]
	done   chan struct{}
}

// Go executes fn asynchronously and returns a Task tracking its completion.
// The function receives the context and the parameter value. If ctx is
// already cancelled when the goroutine starts, fn is not called and the Task
// completes with the context error.
func Go[P, T any](ctx context.Context, param P, fn func(context.Context, P) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}

	go func() {
		defer t.complete()

		// Early exit prevents doing work whose result nobody can use when
		// the context is pre-cancelled.
		select {
		case <-ctx.Done():
			t.result = Result[T]{Err: ctx.Err()}
			return
		default:
		}

		v, err := fn(ctx, param)
		t.result = Result[T]{Value: v, Err: err}
	}()

	return t
}

// complete publishes the result and wakes the most recently registered waker.
func (t *Task[T]) complete() {
	close(t.done)
	t.mu.Lock()
	w := t.waker
	t.waker = nil
	t.mu.Unlock()
	if w != nil {
		w.Wake()
	}
}

// Poll implements future.Future. Before completion it registers w (only the
// most recent waker is woken, per the poll contract) and reports not done.
func (t *Task[T]) Poll(w wakers.Waker) (Result[T], bool) {
	select {
	case <-t.done:
		return t.result, true
	default:
	}

	t.mu.Lock()
	t.waker = w
	t.mu.Unlock()

	// Re-check after registering: completion may have raced with the store
	// above, in which case the wake was already consumed or never sent.
	select {
	case <-t.done:
		return t.result, true
	default:
	}
	return Result[T]{}, false
}

// Await blocks until the task completes and returns its value and error.
func (t *Task[T]) Await() (T, error) {
	<-t.done
	return t.result.Value, t.result.Err
}

// AwaitWithTimeout blocks until the task completes or the timeout elapses.
// On timeout it returns ErrTimeout; the task itself keeps running.
func (t *Task[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-t.done:
		return t.result.Value, t.result.Err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the task has completed, without blocking.
func (t *Task[T]) IsComplete() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
