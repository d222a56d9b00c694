package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/asaleem9/folio/pkg/utils/metrics"
)

// loadCache returns the cached value for key. Any failure, including a
// corrupted entry, is reported as a miss.
func loadCache[T any](ctx context.Context, x *UseCase, source, key string) (T, bool) {
	var zero T
	cache := x.clients.Cache()
	if cache == nil || x.cacheTTL <= 0 {
		return zero, false
	}

	raw, found, err := cache.Get(ctx, key)
	if err != nil {
		metrics.CacheError(source)
		logging.From(ctx).Warn("Failed to read cache, fetching from upstream",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return zero, false
	}
	if !found {
		metrics.CacheMiss(source)
		return zero, false
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		metrics.CacheError(source)
		logging.From(ctx).Warn("Discarding corrupted cache entry",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return zero, false
	}

	metrics.CacheHit(source)
	return value, true
}

func saveCache[T any](ctx context.Context, x *UseCase, key string, value T) {
	cache := x.clients.Cache()
	if cache == nil || x.cacheTTL <= 0 {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		logging.From(ctx).Warn("Failed to encode cache entry", slog.String("key", key), slog.Any("error", err))
		return
	}

	if err := cache.Set(ctx, key, raw, x.cacheTTL); err != nil {
		logging.From(ctx).Warn("Failed to write cache", slog.String("key", key), slog.Any("error", err))
	}
}
