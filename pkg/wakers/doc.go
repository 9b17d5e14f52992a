// Package wakers implements the readiness-tracking half of the poll protocol:
// a lock-protected bitmap that collapses wake notifications from N independent
// sub-operations into at most one wake of the outer task per readiness batch.
//
// The package is built around two types. Readiness is a fixed-size set of
// readiness bits plus a single stored outer Waker. Array hands out one Waker
// handle per slot; invoking handle i marks bit i as ready and, if the bit was
// not already set, wakes the stored outer Waker. The outer task then claims
// individual bits with ClearReady to learn which slots may have progressed.
//
// Every bit starts set so that the first poll of a combinator attempts every
// slot once. This is a deliberate policy: the first poll always drives
// progress, because no sub-operation has had a chance to register a waker yet.
//
// # Usage
//
//	arr := wakers.NewArray(3)
//	r := arr.Readiness()
//
//	r.SetWaker(outer)        // register the outer task on every poll entry
//	if r.ClearReady(1) {     // claim slot 1 for polling
//	    sub.Poll(arr.Get(1)) // the slot waker re-arms bit 1 when invoked
//	}
//
// # Locking
//
// The internal mutex guards only bit inspection and mutation. A stored outer
// Waker is always invoked after the lock has been released, so a Waker
// implementation may synchronously re-enter the Readiness set without
// deadlocking. Callers must follow the same discipline and never poll a
// sub-operation from within a Waker while assuming the bitmap is quiescent.
package wakers
