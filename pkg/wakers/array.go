package wakers

// Array owns one Waker handle per slot, all of them feeding a shared
// Readiness set. Slot wakers may be cloned freely and invoked from any
// goroutine, including synchronously from within the slot's own poll.
type Array struct {
	readiness *Readiness
	wakers    []Waker
}

// NewArray creates an Array tracking n slots. It panics if n is negative.
func NewArray(n int) *Array {
	if n < 0 {
		panic("wakers: negative slot count")
	}
	r := newReadiness(n)
	ws := make([]Waker, n)
	for i := range ws {
		ws[i] = &slotWaker{readiness: r, index: i}
	}
	return &Array{readiness: r, wakers: ws}
}

// Len returns the number of slots.
func (a *Array) Len() int { return len(a.wakers) }

// Get returns the Waker bound to slot i.
func (a *Array) Get(i int) Waker { return a.wakers[i] }

// Readiness returns the shared readiness set fed by the slot wakers.
func (a *Array) Readiness() *Readiness { return a.readiness }

// slotWaker marks its slot ready in the shared readiness set when invoked.
type slotWaker struct {
	readiness *Readiness
	index     int
}

func (s *slotWaker) Wake() { s.readiness.wake(s.index) }
