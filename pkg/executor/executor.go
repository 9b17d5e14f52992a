package executor

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/pollkit/pkg/config"
	"github.com/dmitrymomot/pollkit/pkg/future"
)

// Config declares the environment variables recognized by NewFromEnv.
type Config struct {
	// MaxPolls bounds the number of poll cycles per BlockOn call; 0 means unlimited.
	MaxPolls int `env:"EXECUTOR_MAX_POLLS" envDefault:"0"`
	// StallTimeout bounds the wait for a wake signal; 0 means wait forever.
	StallTimeout time.Duration `env:"EXECUTOR_STALL_TIMEOUT" envDefault:"0"`
}

// Driver holds the drive-loop policy shared by BlockOn calls. A Driver is
// immutable after construction and safe for concurrent use.
type Driver struct {
	log          *slog.Logger
	maxPolls     int
	stallTimeout time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger used for per-cycle debug records. Nil loggers
// are ignored; the default driver logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// WithMaxPolls bounds the number of poll cycles per BlockOn call. Zero or
// negative means unlimited.
func WithMaxPolls(n int) Option {
	return func(d *Driver) { d.maxPolls = n }
}

// WithStallTimeout bounds how long BlockOn waits for a wake signal before
// failing with ErrStalled. Zero or negative means wait forever.
func WithStallTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.stallTimeout = timeout }
}

// New creates a Driver with the given options applied over silent,
// unbounded defaults.
func New(opts ...Option) *Driver {
	d := &Driver{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewFromEnv creates a Driver configured from environment variables, with
// any options applied on top.
func NewFromEnv(opts ...Option) (*Driver, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	d := New(WithMaxPolls(cfg.MaxPolls), WithStallTimeout(cfg.StallTimeout))
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// wakeChan is a channel-backed waker. The buffer of one plus the
// non-blocking send collapse any burst of wakes into a single pending token,
// so waking is always cheap and never blocks the waker's goroutine.
type wakeChan chan struct{}

func (c wakeChan) Wake() {
	select {
	case c <- struct{}{}:
	default:
	}
}

// BlockOn polls fut to completion on the calling goroutine, parking between
// polls until the future wakes the driver. It returns the future's value, or
// an error when ctx is cancelled, the driver's poll budget is exhausted, or
// no wake arrives within the stall timeout.
//
// The future itself has no error channel: a future that models failure does
// so in its value type.
func BlockOn[T any](ctx context.Context, d *Driver, fut future.Future[T]) (T, error) {
	if d == nil {
		d = New()
	}
	var zero T
	wake := make(wakeChan, 1)

	for cycle := 1; ; cycle++ {
		if d.maxPolls > 0 && cycle > d.maxPolls {
			return zero, ErrPollBudgetExceeded
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		d.log.DebugContext(ctx, "poll cycle", slog.Int("cycle", cycle))
		if v, done := fut.Poll(wake); done {
			d.log.DebugContext(ctx, "future complete", slog.Int("cycles", cycle))
			return v, nil
		}

		if err := d.park(ctx, wake); err != nil {
			return zero, err
		}
	}
}

// park waits for a wake signal, the stall timeout, or context cancellation.
func (d *Driver) park(ctx context.Context, wake wakeChan) error {
	if d.stallTimeout > 0 {
		timer := time.NewTimer(d.stallTimeout)
		defer timer.Stop()
		select {
		case <-wake:
			return nil
		case <-timer.C:
			return ErrStalled
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	select {
	case <-wake:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait drives fut to completion using a default Driver.
func Wait[T any](ctx context.Context, fut future.Future[T]) (T, error) {
	return BlockOn(ctx, New(), fut)
}
