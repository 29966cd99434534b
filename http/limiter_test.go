package http_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	flixhttp "github.com/fwojciec/flixsearch/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := flixhttp.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "flixsearch.io")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("spaces out requests to the same host", func(t *testing.T) {
		t.Parallel()

		limiter := flixhttp.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "flixsearch.io"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "flixsearch.io")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("treats host case and port as the same host", func(t *testing.T) {
		t.Parallel()

		limiter := flixhttp.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "FlixSearch.io:443"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "flixsearch.io")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("hosts have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := flixhttp.NewDomainLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "flixsearch.io"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "image.tmdb.org")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("burst allows back-to-back requests", func(t *testing.T) {
		t.Parallel()

		limiter := flixhttp.NewDomainLimiter(1, flixhttp.WithBurst(3))

		start := time.Now()
		for range 3 {
			require.NoError(t, limiter.Wait(context.Background(), "flixsearch.io"))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("host rate overrides the default", func(t *testing.T) {
		t.Parallel()

		limiter := flixhttp.NewDomainLimiter(1, flixhttp.WithHostRate("localhost", 1000))
		require.NoError(t, limiter.Wait(context.Background(), "localhost"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "localhost")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("returns error when context ends first", func(t *testing.T) {
		t.Parallel()

		limiter := flixhttp.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "flixsearch.io"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "flixsearch.io"))
	})

	t.Run("concurrent callers all get through", func(t *testing.T) {
		t.Parallel()

		limiter := flixhttp.NewDomainLimiter(100)

		var wg sync.WaitGroup
		var completed atomic.Int32
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Wait(context.Background(), "flixsearch.io") == nil {
					completed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), completed.Load())
	})
}
