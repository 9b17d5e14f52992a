// Package executor provides a minimal blocking driver for poll-protocol
// futures: it polls a future with a channel-backed waker and parks the
// calling goroutine until the future signals readiness again.
//
// The driver does not spawn goroutines and imposes no scheduling of its own;
// it is the simplest possible "external scheduler" for a future, suitable as
// the outermost drive loop of a join or bridge task.
//
// # Usage
//
//	d := executor.New(
//	    executor.WithStallTimeout(5*time.Second),
//	    executor.WithLogger(log),
//	)
//	vals, err := executor.BlockOn(ctx, d, future.JoinAll(futs...))
//
// Wait is a shorthand using a default driver:
//
//	vals, err := executor.Wait(ctx, future.JoinAll(futs...))
//
// # Configuration
//
// NewFromEnv builds a driver from environment variables via the config
// package: EXECUTOR_MAX_POLLS bounds the number of poll cycles (0 means
// unlimited) and EXECUTOR_STALL_TIMEOUT bounds how long the driver waits for
// a wake signal before giving up with ErrStalled (0 means wait forever). Both
// guards exist to turn a future that lost its waker (a bug) into a loud
// error instead of a hung goroutine.
package executor
