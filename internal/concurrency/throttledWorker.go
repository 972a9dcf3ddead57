package concurrency

import (
	"context"
	"errors"
	"time"
)

// ThrottledWorker runs one job per argument, strictly in order and one at a
// time. A failing job does not stop the remaining ones.
type ThrottledWorker[T any] struct {
	jobCallback func(arg T) error
	interval    time.Duration
}

// NewThrottledWorker creates a worker; an interval of zero disables throttling.
func NewThrottledWorker[T any](interval time.Duration, jobCallback func(arg T) error) ThrottledWorker[T] {
	return ThrottledWorker[T]{jobCallback: jobCallback, interval: interval}
}

// Run returns the joined errors of all failed jobs. Cancelling ctx stops it
// before the next job starts.
func (w *ThrottledWorker[T]) Run(ctx context.Context, jobArgs []T) error {

	var limiter *time.Ticker
	if w.interval > 0 {
		limiter = time.NewTicker(w.interval)
		defer limiter.Stop()
	}

	var errs []error
	for i, arg := range jobArgs {
		if limiter != nil && i > 0 {
			select {
			case <-ctx.Done():
				return errors.Join(append(errs, ctx.Err())...)
			case <-limiter.C:
			}
		} else if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		if err := w.jobCallback(arg); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
