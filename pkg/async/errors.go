package async

import "errors"

// ErrTimeout is returned by AwaitWithTimeout when the task does not complete
// within the given duration.
var ErrTimeout = errors.New("async: operation timed out waiting for task completion")
