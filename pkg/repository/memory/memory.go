package memory

import (
	"context"
	"sync"
	"time"

	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/utils/logging"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Cache is a process-local response cache. Expiry is evaluated with the
// context clock (logging.CtxTime).
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

var _ interfaces.Cache = (*Cache)(nil)

// New creates a new in-memory cache
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
	}
}

func (x *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	x.mu.RLock()
	e, ok := x.entries[key]
	x.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	if !logging.CtxTime(ctx).Before(e.expiresAt) {
		x.mu.Lock()
		// re-check, another writer may have refreshed the entry
		if cur, ok := x.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(x.entries, key)
		}
		x.mu.Unlock()
		return nil, false, nil
	}

	return append([]byte(nil), e.value...), true, nil
}

func (x *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.entries[key] = entry{
		value:     append([]byte(nil), value...),
		expiresAt: logging.CtxTime(ctx).Add(ttl),
	}
	return nil
}
