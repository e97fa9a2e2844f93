package async_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/memoize/pkg/async"
)

func TestAsync_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := async.Async(ctx, 42, func(ctx context.Context, num int) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return fmt.Sprintf("number: %d", num), nil
	})

	result, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, "number: 42", result)
}

func TestAsync_Error(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	wantErr := errors.New("boom")
	future := async.Async(ctx, "arg", func(ctx context.Context, s string) (int, error) {
		return 0, wantErr
	})

	result, err := future.Await()
	assert.ErrorIs(t, err, wantErr)
	assert.Zero(t, result)
}

func TestAsync_PanicRecovered(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := async.Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (string, error) {
		panic("unexpected state")
	})

	result, err := future.Await()
	assert.ErrorIs(t, err, async.ErrPanicked)
	assert.Contains(t, err.Error(), "unexpected state")
	assert.Empty(t, result)
}

func TestAsync_PreCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	future := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) {
		called = true
		return 1, nil
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called, "function must not run with a pre-canceled context")
}

func TestFuture_AwaitWithTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("completes in time", func(t *testing.T) {
		t.Parallel()
		future := async.Async(ctx, 0, func(ctx context.Context, _ int) (string, error) {
			return "done", nil
		})

		result, err := future.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, "done", result)
	})

	t.Run("times out", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		defer close(release)

		future := async.Async(ctx, 0, func(ctx context.Context, _ int) (string, error) {
			<-release
			return "late", nil
		})

		result, err := future.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
		assert.Empty(t, result)
	})
}

func TestFuture_IsComplete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	release := make(chan struct{})
	future := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) {
		<-release
		return 7, nil
	})

	assert.False(t, future.IsComplete())

	close(release)
	_, err := future.Await()
	require.NoError(t, err)
	assert.True(t, future.IsComplete())
}

func TestFuture_Err(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nil while pending", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		defer close(release)

		future := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) {
			<-release
			return 0, errors.New("late failure")
		})

		assert.NoError(t, future.Err())
	})

	t.Run("reports settled failure", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("boom")
		future := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) {
			return 0, wantErr
		})

		_, _ = future.Await()
		assert.ErrorIs(t, future.Err(), wantErr)
	})

	t.Run("nil on success", func(t *testing.T) {
		t.Parallel()
		future := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) {
			return 1, nil
		})

		_, err := future.Await()
		require.NoError(t, err)
		assert.NoError(t, future.Err())
	})
}

func TestWaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("collects all results in order", func(t *testing.T) {
		t.Parallel()
		futures := make([]*async.Future[int], 3)
		for i := range futures {
			futures[i] = async.Async(ctx, i, func(ctx context.Context, n int) (int, error) {
				time.Sleep(time.Duration(3-n) * 10 * time.Millisecond)
				return n * 10, nil
			})
		}

		results, err := async.WaitAll(futures...)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 10, 20}, results)
	})

	t.Run("returns first error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("fetch failed")
		ok := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) { return 1, nil })
		bad := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) { return 0, wantErr })

		_, err := async.WaitAll(ok, bad)
		assert.ErrorIs(t, err, wantErr)
	})
}
