package async_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uabench/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns result", func(t *testing.T) {
		t.Parallel()
		f := async.Async(context.Background(), 42, func(_ context.Context, n int) (string, error) {
			return strconv.Itoa(n), nil
		})
		got, err := f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "42", got)
		assert.True(t, f.Done())
	})

	t.Run("canceled context skips the call", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := make(chan struct{}, 1)
		f := async.Async(ctx, 1, func(context.Context, int) (int, error) {
			called <- struct{}{}
			return 1, nil
		})
		_, err := f.Await(context.Background())
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, called)
	})

	t.Run("await gives up with its context", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		defer close(release)

		f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
			<-release
			return 0, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err := f.Await(ctx)
		require.ErrorIs(t, err, async.ErrAwaitCanceled)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, f.Done())
	})
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	double := func(_ context.Context, n int) (int, error) { return n * 2, nil }
	fail := errors.New("parser crashed")

	t.Run("keeps order", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		results, err := async.WaitAll(ctx,
			async.Async(ctx, 1, double),
			async.Async(ctx, 2, double),
			async.Async(ctx, 3, double),
		)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4, 6}, results)
	})

	t.Run("collects every error and keeps other results", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		results, err := async.WaitAll(ctx,
			async.Async(ctx, 1, double),
			async.Async(ctx, 2, func(context.Context, int) (int, error) { return 99, fail }),
			async.Async(ctx, 3, double),
		)
		require.ErrorIs(t, err, fail)
		assert.Equal(t, []int{2, 0, 6}, results)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		results, err := async.WaitAll[int](context.Background())
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
