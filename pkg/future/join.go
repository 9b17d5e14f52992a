package future

import (
	"strings"

	"github.com/dmitrymomot/pollkit/pkg/wakers"
)

// Join drives N similarly-typed futures to completion and yields their
// results as one slice in input order. It is created by JoinAll.
//
// A Join exclusively owns its sub-operations and their result storage. It is
// not safe for concurrent use: it is designed to be polled by a single
// driver, with wake signals arriving from any goroutine through the slot
// wakers it hands out.
type Join[T any] struct {
	consumed  bool
	cancelled bool
	pending   int
	items     []T
	states    []slotState
	wakers    *wakers.Array
	futures   []Future[T]
}

// JoinAll combines the given futures into a single Join. The arity is fixed
// at construction; the aggregate produced on completion has one element per
// input future, at the same index.
func JoinAll[T any](futures ...Future[T]) *Join[T] {
	n := len(futures)
	fs := make([]Future[T], n)
	copy(fs, futures)
	return &Join[T]{
		pending: n,
		items:   make([]T, n),
		states:  make([]slotState, n),
		wakers:  wakers.NewArray(n),
		futures: fs,
	}
}

// Len returns the number of slots in the join.
func (j *Join[T]) Len() int { return len(j.states) }

// Poll drives the join one step. It registers w as the outer continuation,
// polls every slot that has signalled readiness since it was last polled (in
// ascending index order), and either returns the completed aggregate or
// reports that the join is still pending.
//
// Poll panics with ErrPolledAfterConsumed if the aggregate has already been
// produced, and with ErrPolledAfterCancel if the join has been cancelled.
func (j *Join[T]) Poll(w wakers.Waker) ([]T, bool) {
	if j.consumed {
		panic(ErrPolledAfterConsumed)
	}
	if j.cancelled {
		panic(ErrPolledAfterCancel)
	}

	r := j.wakers.Readiness()
	r.SetWaker(w)

	// A zero-arity join completes immediately; there are no slots to ever
	// signal readiness, so suspending here would suspend forever.
	if j.pending > 0 && !r.AnyReady() {
		return nil, false
	}

	for i := range j.futures {
		// Claiming the bit via ClearReady guarantees at most one poll per
		// readiness signal even when wakes race with this scan.
		if j.states[i] != slotPending || !r.ClearReady(i) {
			continue
		}
		// The readiness lock is not held across this call: polling may
		// synchronously invoke the slot waker, which takes the same lock.
		if v, done := j.futures[i].Poll(j.wakers.Get(i)); done {
			j.items[i] = v
			j.states[i] = slotReady
			j.pending--
		}
	}

	if j.pending > 0 {
		return nil, false
	}

	for i := range j.states {
		if j.states[i] != slotReady {
			panic(ErrSlotNotReady)
		}
		j.states[i] = slotConsumed
	}
	j.consumed = true

	// Move the storage out: the returned slice is the single owner of the
	// results from here on.
	items := j.items
	j.items = nil
	j.futures = nil
	return items, true
}

// Cancel tears the join down before completion. Every slot whose result was
// produced but not yet handed out is released exactly once: if the value
// implements Releaser its Release method is called, and the cell is zeroed
// either way. Still-pending sub-operations are discarded without further
// ceremony. Cancel is idempotent, and a no-op after normal completion.
func (j *Join[T]) Cancel() {
	if j.consumed || j.cancelled {
		return
	}
	var zero T
	for i := range j.states {
		if j.states[i] != slotReady {
			continue
		}
		if rel, ok := any(j.items[i]).(Releaser); ok {
			rel.Release()
		}
		j.items[i] = zero
		j.states[i] = slotConsumed
	}
	j.items = nil
	j.futures = nil
	j.cancelled = true
}

// String renders each slot's lifecycle stage in index order, for example
// "[Pending, Ready, Consumed]". The format is stable and intended for tests
// and logging.
func (j *Join[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range j.states {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteByte(']')
	return b.String()
}
