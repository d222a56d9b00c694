package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
)

// Advancer moves the clock seen by a cache implementation forward. It returns
// the context to use for subsequent calls.
type Advancer func(ctx context.Context, d time.Duration) context.Context

// ClockAdvancer advances the context clock (logging.CtxTime). It fits caches
// that evaluate expiry in-process.
func ClockAdvancer() Advancer {
	return func(ctx context.Context, d time.Duration) context.Context {
		now := logging.CtxTime(ctx).Add(d)
		return logging.CtxWithTime(ctx, func() time.Time { return now })
	}
}

// TestAll runs all test cases for Cache
// This is the main entry point for testing any Cache implementation
func TestAll(t *testing.T, cache interfaces.Cache, advance Advancer) {
	t.Run("SetAndGet", func(t *testing.T) {
		TestSetAndGet(t, cache)
	})
	t.Run("Miss", func(t *testing.T) {
		TestMiss(t, cache)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, cache)
	})
	t.Run("Expiry", func(t *testing.T) {
		TestExpiry(t, cache, advance)
	})
	t.Run("ConcurrentAccess", func(t *testing.T) {
		TestConcurrentAccess(t, cache)
	})
}

func newKey(prefix string) string {
	return fmt.Sprintf("%s:%s", prefix, uuid.NewString()[:8])
}

func TestSetAndGet(t *testing.T, cache interfaces.Cache) {
	ctx := context.Background()
	key := newKey("set-get")

	gt.NoError(t, cache.Set(ctx, key, []byte(`[{"id":1}]`), time.Hour))

	value, found, err := cache.Get(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, string(value)).Equal(`[{"id":1}]`)
}

func TestMiss(t *testing.T, cache interfaces.Cache) {
	value, found, err := cache.Get(context.Background(), newKey("miss"))
	gt.NoError(t, err)
	gt.False(t, found)
	gt.V(t, len(value)).Equal(0)
}

func TestOverwrite(t *testing.T, cache interfaces.Cache) {
	ctx := context.Background()
	key := newKey("overwrite")

	gt.NoError(t, cache.Set(ctx, key, []byte("first"), time.Hour))
	gt.NoError(t, cache.Set(ctx, key, []byte("second"), time.Hour))

	value, found, err := cache.Get(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, string(value)).Equal("second")
}

func TestExpiry(t *testing.T, cache interfaces.Cache, advance Advancer) {
	ctx := context.Background()
	now := time.Now()
	ctx = logging.CtxWithTime(ctx, func() time.Time { return now })
	key := newKey("expiry")

	gt.NoError(t, cache.Set(ctx, key, []byte("value"), time.Minute))

	ctx = advance(ctx, 30*time.Second)
	_, found, err := cache.Get(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)

	ctx = advance(ctx, time.Minute)
	_, found, err = cache.Get(ctx, key)
	gt.NoError(t, err)
	gt.False(t, found)
}

func TestConcurrentAccess(t *testing.T, cache interfaces.Cache) {
	ctx := context.Background()
	key := newKey("concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = cache.Set(ctx, key, []byte(fmt.Sprintf("v%d", i)), time.Hour)
			_, _, _ = cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	_, found, err := cache.Get(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)
}
