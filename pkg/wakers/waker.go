package wakers

// Waker is the continuation handle supplied by whatever drives a poll loop.
// Invoking Wake signals "re-poll me". Implementations must tolerate concurrent
// and repeated invocation; coalescing duplicate wakes is the caller's concern
// (see Readiness, which wakes its outer Waker at most once per readiness batch).
type Waker interface {
	Wake()
}

// WakeFunc adapts a plain function to the Waker interface.
type WakeFunc func()

// Wake calls f.
func (f WakeFunc) Wake() { f() }

type dummyWaker struct{}

func (dummyWaker) Wake() {}

// Dummy returns a Waker that does nothing when woken. It is intended for
// tests and for polling operations that are known to complete immediately.
func Dummy() Waker { return dummyWaker{} }
