package async

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Future represents the eventual result of an asynchronous computation.
// A Future settles exactly once; every holder observes the same result.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Await blocks until the computation settles and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks until the computation settles or the timeout
// elapses. On timeout it returns ErrTimeout; the computation itself keeps
// running and the Future can still be awaited later.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has settled, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Err reports the settled error without blocking. It returns nil while the
// computation is still running and on success.
func (f *Future[U]) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// settle records the outcome and releases all waiters. Safe to call more
// than once; only the first outcome wins.
func (f *Future[U]) settle(result U, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Async runs fn in its own goroutine and immediately returns a Future for
// its outcome. A panic inside fn is recovered and surfaces as an error
// wrapping ErrPanicked, so a misbehaving computation settles the Future
// instead of crashing the process.
//
// If ctx is already canceled the Future settles with the context error
// without invoking fn.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		var zero U

		// Early exit prevents doing work when the context is pre-canceled.
		select {
		case <-ctx.Done():
			f.settle(zero, ctx.Err())
			return
		default:
		}

		defer func() {
			if r := recover(); r != nil {
				f.settle(zero, fmt.Errorf("%w: %v", ErrPanicked, r))
			}
		}()

		res, err := fn(ctx, param)
		f.settle(res, err)
	}()

	return f
}

// WaitAll awaits every future in order and returns their results. It stops
// at the first error, returning the results collected so far alongside it.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
