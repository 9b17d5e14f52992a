// Package future provides a poll-driven asynchronous value protocol and a
// fixed-arity join combinator that drives N sub-operations to completion and
// yields their results as one ordered aggregate.
//
// A Future is inert: it makes progress only when polled. Poll either returns
// the final value, or reports that the value is not ready yet after arranging
// for the supplied Waker to be invoked once progress becomes possible. The
// protocol mirrors readiness-based I/O multiplexing: a woken task re-polls
// only the operations that signalled, not everything it owns.
//
// # Joining
//
// JoinAll combines N futures into one. The combinator polls only slots whose
// readiness bit is set (see the wakers package), so each outer poll costs
// O(ready slots) rather than O(N). Ready slots are serviced in ascending
// index order within a poll, which makes interleavings deterministic and
// reproducible. The aggregate preserves input order regardless of which
// sub-operation finished first:
//
//	j := future.JoinAll(future.Ready("hello"), future.Ready("world"))
//	vals, done := j.Poll(wakers.Dummy()) // done == true on the first poll
//	// vals == []string{"hello", "world"}
//
// # Lifecycle and cancellation
//
// Each slot moves Pending → Ready → Consumed, and the combinator's String
// method renders the per-slot stage for debugging. Polling a join after its
// aggregate has been produced, or after it has been cancelled, is a contract
// violation and panics. Cancel tears a join down before completion: values
// already produced but not yet handed out are released exactly once (via the
// Releaser interface when implemented), still-pending sub-operations are
// simply discarded.
//
// # Errors
//
// Individual sub-operation failure is opaque to the combinator; it tracks
// completion only. Model fallible operations with a result-carrying value
// type (see the async package's Result).
package future
