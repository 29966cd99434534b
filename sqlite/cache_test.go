package sqlite_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/flixsearch"
	"github.com/fwojciec/flixsearch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock is a settable time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleResults() []*flixsearch.Result {
	return []*flixsearch.Result{
		{
			Title:       "Breaking Bad (2008)",
			URL:         "https://flixsearch.io/tvshow/breaking-bad-2008",
			ImageURL:    "https://image.tmdb.org/t/p/w300/bb.jpg",
			Description: "A chemistry instructor turns to crime.",
			Genres:      []string{"Drama", "Thriller"},
			Countries:   []string{"USA", "Canada"},
		},
		{
			Title:     "Narcos",
			URL:       "https://flixsearch.io/tvshow/narcos-2015",
			Genres:    []string{},
			Countries: []string{"Mexico"},
		},
	}
}

// counting returns a ComputeFunc that counts its calls.
func counting(calls *atomic.Int32, results []*flixsearch.Result) flixsearch.ComputeFunc {
	return func(context.Context) ([]*flixsearch.Result, error) {
		calls.Add(1)
		return results, nil
	}
}

func TestResultCache_GetOrCompute(t *testing.T) {
	t.Parallel()

	t.Run("computes on miss and serves hit within TTL", func(t *testing.T) {
		t.Parallel()

		clk := &clock{now: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
		cache := sqlite.NewResultCache(openDB(t), sqlite.WithClock(clk.Now))
		var calls atomic.Int32

		first, err := cache.GetOrCompute(context.Background(), "breaking bad", counting(&calls, sampleResults()))
		require.NoError(t, err)

		clk.Advance(30 * time.Minute)
		second, err := cache.GetOrCompute(context.Background(), "breaking bad", counting(&calls, nil))
		require.NoError(t, err)

		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, sampleResults(), first)
		assert.Equal(t, sampleResults(), second)
	})

	t.Run("recomputes entry older than TTL", func(t *testing.T) {
		t.Parallel()

		clk := &clock{now: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
		cache := sqlite.NewResultCache(openDB(t), sqlite.WithClock(clk.Now))
		var calls atomic.Int32

		_, err := cache.GetOrCompute(context.Background(), "narcos", counting(&calls, sampleResults()))
		require.NoError(t, err)

		clk.Advance(3599 * time.Second)
		_, err = cache.GetOrCompute(context.Background(), "narcos", counting(&calls, sampleResults()))
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load(), "entry younger than TTL must not be recomputed")

		clk.Advance(2 * time.Second)
		fresh := sampleResults()[:1]
		got, err := cache.GetOrCompute(context.Background(), "narcos", counting(&calls, fresh))
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, fresh, got)

		// The recomputed entry is fresh again.
		clk.Advance(time.Minute)
		got, err = cache.GetOrCompute(context.Background(), "narcos", counting(&calls, nil))
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, fresh, got)
	})

	t.Run("respects custom TTL", func(t *testing.T) {
		t.Parallel()

		clk := &clock{now: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
		cache := sqlite.NewResultCache(openDB(t), sqlite.WithClock(clk.Now), sqlite.WithTTL(time.Minute))
		var calls atomic.Int32

		_, err := cache.GetOrCompute(context.Background(), "q", counting(&calls, sampleResults()))
		require.NoError(t, err)
		clk.Advance(time.Minute)
		_, err = cache.GetOrCompute(context.Background(), "q", counting(&calls, sampleResults()))
		require.NoError(t, err)

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("keeps queries separate", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewResultCache(openDB(t))
		var calls atomic.Int32

		_, err := cache.GetOrCompute(context.Background(), "a", counting(&calls, sampleResults()))
		require.NoError(t, err)
		got, err := cache.GetOrCompute(context.Background(), "b", counting(&calls, sampleResults()[:1]))
		require.NoError(t, err)

		assert.Equal(t, int32(2), calls.Load())
		assert.Len(t, got, 1)
	})

	t.Run("caches empty results", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewResultCache(openDB(t))
		var calls atomic.Int32

		first, err := cache.GetOrCompute(context.Background(), "nothing", counting(&calls, nil))
		require.NoError(t, err)
		second, err := cache.GetOrCompute(context.Background(), "nothing", counting(&calls, sampleResults()))
		require.NoError(t, err)

		assert.Equal(t, int32(1), calls.Load())
		assert.Empty(t, first)
		assert.NotNil(t, second)
		assert.Empty(t, second)
	})

	t.Run("does not store compute errors", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewResultCache(openDB(t))
		computeErr := errors.New("provider down")

		_, err := cache.GetOrCompute(context.Background(), "q", func(context.Context) ([]*flixsearch.Result, error) {
			return nil, computeErr
		})
		require.ErrorIs(t, err, computeErr)

		var calls atomic.Int32
		got, err := cache.GetOrCompute(context.Background(), "q", counting(&calls, sampleResults()))
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load())
		assert.Len(t, got, 2)
	})

	t.Run("keys entries by query fingerprint", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		cache := sqlite.NewResultCache(db)
		query := "amélie / le fabuleux destin"

		_, err := cache.GetOrCompute(context.Background(), query, func(context.Context) ([]*flixsearch.Result, error) {
			return sampleResults(), nil
		})
		require.NoError(t, err)

		var key string
		err = db.QueryRowContext(context.Background(), "SELECT key FROM results").Scan(&key)
		require.NoError(t, err)
		assert.Equal(t, flixsearch.Fingerprint(query), key)
	})

	t.Run("treats corrupted entry as miss", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		cache := sqlite.NewResultCache(db)
		var calls atomic.Int32

		_, err := cache.GetOrCompute(context.Background(), "q", counting(&calls, sampleResults()))
		require.NoError(t, err)

		_, err = db.ExecContext(context.Background(), "UPDATE results SET payload = '[{\"title\":'")
		require.NoError(t, err)

		got, err := cache.GetOrCompute(context.Background(), "q", counting(&calls, sampleResults()))
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
		assert.Len(t, got, 2)
	})

	t.Run("last writer wins for same query", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)
		clk := &clock{now: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
		cache := sqlite.NewResultCache(db, sqlite.WithClock(clk.Now))
		var calls atomic.Int32

		_, err := cache.GetOrCompute(context.Background(), "q", counting(&calls, sampleResults()))
		require.NoError(t, err)
		clk.Advance(2 * time.Hour)
		_, err = cache.GetOrCompute(context.Background(), "q", counting(&calls, sampleResults()[:1]))
		require.NoError(t, err)

		var count int
		err = db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM results").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("shares computation between concurrent callers", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewResultCache(openDB(t))
		var calls atomic.Int32
		release := make(chan struct{})
		compute := func(context.Context) ([]*flixsearch.Result, error) {
			calls.Add(1)
			<-release
			return sampleResults(), nil
		}

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := cache.GetOrCompute(context.Background(), "q", compute)
				assert.NoError(t, err)
				assert.Len(t, got, 2)
			}()
		}

		// Let every goroutine reach the cache before releasing the computation.
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestResultCache_Clear(t *testing.T) {
	t.Parallel()

	cache := sqlite.NewResultCache(openDB(t))
	var calls atomic.Int32

	_, err := cache.GetOrCompute(context.Background(), "q", counting(&calls, sampleResults()))
	require.NoError(t, err)

	require.NoError(t, cache.Clear(context.Background()))

	_, err = cache.GetOrCompute(context.Background(), "q", counting(&calls, sampleResults()))
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}
