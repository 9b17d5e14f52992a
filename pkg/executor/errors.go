package executor

import "errors"

var (
	// ErrStalled is returned when no wake signal arrives within the driver's
	// stall timeout. It almost always means a future returned "not done"
	// without retaining the waker it was given.
	ErrStalled = errors.New("executor: no wake signal received before stall timeout")

	// ErrPollBudgetExceeded is returned when a BlockOn call exceeds the
	// driver's maximum number of poll cycles.
	ErrPollBudgetExceeded = errors.New("executor: poll budget exceeded")
)
