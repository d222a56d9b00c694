package redis

import (
	"context"
	"errors"
	"time"

	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	goredis "github.com/redis/go-redis/v9"
)

const defaultPrefix = "folio:"

// Cache stores responses in Redis so that several instances share one
// upstream budget. Expiry is delegated to Redis TTLs.
type Cache struct {
	rdb    *goredis.Client
	prefix string
}

var _ interfaces.Cache = (*Cache)(nil)

// New connects to the Redis server at redisURL (e.g. redis://:pass@host:6379/0)
// and fails fast when it is not reachable.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid redis URL")
	}

	rdb := goredis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, goerr.Wrap(err, "failed to connect to redis", goerr.V("addr", opt.Addr))
	}

	return &Cache{rdb: rdb, prefix: defaultPrefix}, nil
}

func (x *Cache) key(k string) string { return x.prefix + k }

func (x *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := x.rdb.Get(ctx, x.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get cache entry", goerr.V("key", key))
	}
	return value, true, nil
}

func (x *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := x.rdb.Set(ctx, x.key(key), value, ttl).Err(); err != nil {
		return goerr.Wrap(err, "failed to set cache entry", goerr.V("key", key))
	}
	return nil
}

func (x *Cache) Close() error {
	return x.rdb.Close()
}
