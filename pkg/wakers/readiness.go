package wakers

import (
	"fmt"
	"sync"
)

const wordBits = 64

// Readiness records which of N slots have signalled readiness since they were
// last claimed, and holds the outer Waker to notify when a new signal arrives.
// All methods are safe for concurrent use.
//
// Bits are stored in packed uint64 words. Every bit starts set so the first
// poll attempts every slot once.
type Readiness struct {
	mu    sync.Mutex
	words []uint64
	n     int
	waker Waker
}

func newReadiness(n int) *Readiness {
	r := &Readiness{
		words: make([]uint64, (n+wordBits-1)/wordBits),
		n:     n,
	}
	for i := range r.words {
		r.words[i] = ^uint64(0)
	}
	// Mask the unused tail bits of the last word so AnyReady never reports
	// readiness for slots that do not exist.
	if rem := n % wordBits; rem != 0 {
		r.words[len(r.words)-1] = (uint64(1) << rem) - 1
	}
	return r
}

// Len returns the number of slots tracked by the set.
func (r *Readiness) Len() int { return r.n }

// SetWaker stores w as the outer continuation, replacing any previously
// stored Waker. Callers register on every poll entry so the most recently
// supplied handle is always the one woken.
func (r *Readiness) SetWaker(w Waker) {
	r.mu.Lock()
	r.waker = w
	r.mu.Unlock()
}

// AnyReady reports whether at least one slot has an unclaimed readiness bit.
func (r *Readiness) AnyReady() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// ClearReady atomically tests and clears bit i, returning whether it was set.
// A true result claims the slot: the caller is now the only one entitled to
// poll it for this readiness signal, so concurrent wake events cannot cause
// duplicate polls.
func (r *Readiness) ClearReady(i int) bool {
	r.check(i)
	word, mask := i/wordBits, uint64(1)<<(i%wordBits)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.words[word]&mask == 0 {
		return false
	}
	r.words[word] &^= mask
	return true
}

// wake sets bit i and, if the bit was previously clear and an outer Waker is
// stored, invokes it. The Waker is called after the lock has been released so
// that it may safely re-enter this Readiness set. Multiple wakes of an
// already-set bit collapse into nothing: the outer task has already been told
// to come back and look.
func (r *Readiness) wake(i int) {
	r.check(i)
	word, mask := i/wordBits, uint64(1)<<(i%wordBits)
	r.mu.Lock()
	already := r.words[word]&mask != 0
	r.words[word] |= mask
	outer := r.waker
	r.mu.Unlock()
	if !already && outer != nil {
		outer.Wake()
	}
}

func (r *Readiness) check(i int) {
	if i < 0 || i >= r.n {
		panic(fmt.Sprintf("wakers: slot index %d out of range [0, %d)", i, r.n))
	}
}
