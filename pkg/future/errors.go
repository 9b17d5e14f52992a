package future

import "errors"

// Both errors below are contract violations, not recoverable conditions.
// They are used as panic values: a join that is polled after its aggregate
// was produced, or that finds a slot in an impossible state at completion,
// indicates a defect in the calling scheduler or in the combinator itself.
var (
	ErrPolledAfterConsumed = errors.New("future: join polled after its aggregate was consumed")
	ErrPolledAfterCancel   = errors.New("future: join polled after cancellation")
	ErrSlotNotReady        = errors.New("future: slot not in Ready state at completion")
)
