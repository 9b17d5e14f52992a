// Package pollkit provides poll-driven asynchronous primitives for Go:
// futures that make progress only when polled, readiness-tracking wakers
// that tell a driver exactly which operations to re-poll, and a fixed-arity
// join combinator that aggregates N operations into one ordered result.
//
// Goroutines and channels already make forking easy; pollkit focuses on the
// joining side, and on workloads where wake-ups must be directed: a task
// owning N sub-operations should re-poll only the ones that signalled, not
// scan all of them on every wake.
//
// The library is organised as independent packages:
//
//   - pkg/future is the Future protocol, ready/never/func adapters, and the
//     Join combinator with per-slot lifecycle tracking and cancellation-safe
//     teardown.
//   - pkg/wakers is the readiness bitmap: per-slot waker handles that collapse
//     any burst of wake notifications into a single wake of the outer task.
//   - pkg/async bridges goroutine-backed computations into the poll
//     protocol, so conventional concurrent code can participate in a join.
//   - pkg/executor is a blocking drive loop that polls a future to completion,
//     with optional stall and budget guards, env configuration and slog
//     logging.
//   - pkg/config, pkg/logger hold shared configuration and logging helpers used
//     by the executor.
//
// A typical composition:
//
//	t1 := async.Go(ctx, a, fetchA)
//	t2 := async.Go(ctx, b, fetchB)
//	results, err := executor.Wait(ctx, future.JoinAll[async.Result[Item]](t1, t2))
//
// The aggregate preserves input order regardless of completion order.
package pollkit
