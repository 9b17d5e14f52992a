// Package async bridges ordinary goroutine-backed computations into the
// poll-driven Future protocol.
//
// Go starts the supplied function in its own goroutine and immediately
// returns a *Task. A Task is both a conventional future, where the caller can
// block with Await, bound the wait with AwaitWithTimeout, or check progress
// with IsComplete, and a poll-protocol citizen: it implements
// future.Future[Result[T]], so tasks can be combined with future.JoinAll and
// driven by the executor package alongside purely cooperative futures.
//
// All helpers are context-aware: if the provided context is cancelled before
// the computation starts, the goroutine aborts early and the Task completes
// with the context error.
//
// # Usage
//
//	t1 := async.Go(ctx, userID, loadProfile)
//	t2 := async.Go(ctx, userID, loadSettings)
//
//	results, err := executor.Wait(ctx, future.JoinAll[async.Result[Page]](t1, t2))
//
// # Error Handling
//
// A Task completes with a Result carrying both the value and the error
// produced by the user callback. Failure is opaque to combinators: a failed
// task is simply a completed one, so joining tasks never short-circuits;
// inspect each Result after the aggregate arrives.
package async
