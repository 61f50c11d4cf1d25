package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

var _ Cache = (*RedisCache)(nil)

// RedisCache shares cached values between replicas. Values are stored as raw
// bytes: callers pass []byte or string and receive []byte back from Get.
type RedisCache struct {
	client      CacheClient
	config      *RedisConfig
	singleGroup singleflight.Group
}

type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// KeyPrefix namespaces every key written by this cache.
	KeyPrefix string
}

func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:         "localhost:6379",
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		KeyPrefix:    "crm:",
	}
}

var ErrUnsupportedValue = errors.New("redis cache only stores []byte or string values")

func NewRedisCache(config *RedisConfig) (*RedisCache, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	slog.Info("redis cache initialized",
		slog.String("addr", config.Addr),
		slog.Int("db", config.DB))

	return NewRedisCacheWithClient(client, config), nil
}

func NewRedisCacheWithClient(client CacheClient, config *RedisConfig) *RedisCache {
	if config == nil {
		config = DefaultRedisConfig()
	}

	return &RedisCache{
		client: client,
		config: config,
	}
}

func (c *RedisCache) key(key string) string {
	return c.config.KeyPrefix + key
}

func (c *RedisCache) Get(ctx context.Context, key string) (any, bool) {
	result, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Error("getting value from redis cache",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		countLookup("redis", false)
		return nil, false
	}

	countLookup("redis", true)
	return result, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	switch value.(type) {
	case []byte, string:
	default:
		slog.Error("setting value in redis cache",
			slog.String("key", key),
			slog.String("error", ErrUnsupportedValue.Error()))
		return false
	}

	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		slog.Error("setting value in redis cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false
	}

	return true
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		slog.Error("deleting value from redis cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

func (c *RedisCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := c.singleGroup.Do(key, func() (any, error) {
		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.Set(ctx, key, value, ttl)
		return value, nil
	})

	return value, err
}

func (c *RedisCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	return c.client.Keys(ctx, c.key(pattern)).Result()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
