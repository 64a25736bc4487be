package async

import (
	"context"
	"errors"
)

// Future is the eventual result of a function started by Async.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the function returns or ctx is done.
func (f *Future[U]) Await(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, errors.Join(ErrAwaitCanceled, ctx.Err())
	}
}

// Done reports whether the function has returned, without blocking.
func (f *Future[U]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn(ctx, param) in its own goroutine. When ctx is already done
// fn is not called and the future completes with the context error.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll waits for every future and returns results in input order. Unlike
// a fail-fast wait, each future is awaited even after a failure; the
// returned error joins all of them and results[i] is the zero value for
// every failed future.
func WaitAll[U any](ctx context.Context, futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	errs := make([]error, 0)

	for i, future := range futures {
		result, err := future.Await(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results[i] = result
	}

	return results, errors.Join(errs...)
}
