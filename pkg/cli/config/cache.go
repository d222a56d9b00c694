package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/repository/memory"
	"github.com/asaleem9/folio/pkg/repository/redis"
	"github.com/asaleem9/folio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type Cache struct {
	ttl      time.Duration
	redisURL string `masq:"secret"`
}

func (x *Cache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "How long fetched feeds are reused, 0 disables caching",
			Category:    "Cache",
			Value:       usecase.DefaultCacheTTL,
			Destination: &x.ttl,
			Sources:     cli.EnvVars("FOLIO_CACHE_TTL"),
		},
		&cli.StringFlag{
			Name:        "redis-url",
			Usage:       "Redis URL (redis://...) of a shared cache; in-memory cache is used if empty",
			Category:    "Cache",
			Destination: &x.redisURL,
			Sources:     cli.EnvVars("FOLIO_REDIS_URL"),
		},
	}
}

// New returns the cache backend and a function releasing it. The cache is nil
// when caching is disabled.
func (x Cache) New(ctx context.Context) (interfaces.Cache, func(), error) {
	if x.ttl <= 0 {
		return nil, func() {}, nil
	}

	if x.redisURL == "" {
		return memory.New(), func() {}, nil
	}

	client, err := redis.New(ctx, x.redisURL)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

func (x Cache) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithCacheTTL(x.ttl),
	}
}

func (x Cache) LogValue() slog.Value {
	backend := "memory"
	if x.redisURL != "" {
		backend = "redis"
	}
	return slog.GroupValue(
		slog.Duration("TTL", x.ttl),
		slog.String("Backend", backend),
	)
}
