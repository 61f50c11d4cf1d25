package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=cache.go -destination=../../../test/unit/doubles/infra/cache/cache_mock.go -package=cache -mock_names=Cache=MockCache

type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
	Delete(ctx context.Context, key string)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
}

var (
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_cache_lookups_total",
		Help: "Cache lookups partitioned by backend and result.",
	}, []string{"backend", "result"})
)

func countLookup(backend string, found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	lookups.WithLabelValues(backend, result).Inc()
}

var _ Cache = (*RistrettoCache)(nil)

// RistrettoCache is an in-process cache. Concurrent loads of the same key
// through GetOrSet are collapsed into one.
type RistrettoCache struct {
	store       *ristretto.Cache
	singleGroup singleflight.Group
	config      *CacheConfig
}

type CacheConfig struct {
	// MaxCost is the maximum total cost; every entry costs 1 unless sized.
	MaxCost     int64
	NumCounters int64
	BufferItems int64
}

func DefaultConfig() *CacheConfig {
	return &CacheConfig{
		MaxCost:     1 << 16,
		NumCounters: 1e6,
		BufferItems: 64,
	}
}

func New(config *CacheConfig) (*RistrettoCache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: config.BufferItems,
		OnEvict: func(item *ristretto.Item) {
			slog.Debug("cache entry evicted", slog.Uint64("key", item.Key))
		},
	})
	if err != nil {
		return nil, err
	}

	cache := &RistrettoCache{
		store:  store,
		config: config,
	}

	return cache, nil
}

func (c *RistrettoCache) Get(ctx context.Context, key string) (any, bool) {
	if ctx.Err() != nil {
		return nil, false
	}

	value, found := c.store.Get(key)
	countLookup("ristretto", found)
	return value, found
}

// Set stores value and waits until it is visible to Get.
func (c *RistrettoCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}

	ok := c.store.SetWithTTL(key, value, 1, ttl)
	c.store.Wait()
	return ok
}

func (c *RistrettoCache) Delete(ctx context.Context, key string) {
	if ctx.Err() != nil {
		return
	}
	c.store.Del(key)
}

func (c *RistrettoCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := c.singleGroup.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if value, found := c.store.Get(key); found {
			return value, nil
		}

		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.Set(ctx, key, value, ttl)
		return value, nil
	})

	return value, err
}

// Keys is not supported by ristretto and always returns an empty list.
func (c *RistrettoCache) Keys(ctx context.Context, _ string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []string{}, nil
}

func (c *RistrettoCache) Close() {
	c.store.Close()
}
