package interfaces

import (
	"context"
	"time"
)

//go:generate moq -out ../mock/cache_mock.go -pkg mock . Cache

// Cache holds serialized feed results for a bounded time.
type Cache interface {
	// Get returns the value and whether it was found and not expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
