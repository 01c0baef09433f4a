package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RedisCache is a BytesCache shared between instances.
type RedisCache struct {
	cli    *redis.Client
	prefix string
}

// NewRedisCache connects and pings the server.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newRedisCache(rdb, cfg.Prefix), nil
}

func newRedisCache(cli *redis.Client, prefix string) *RedisCache {
	return &RedisCache{cli: cli, prefix: prefix}
}

func (r *RedisCache) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.cli.Get(ctx, r.wrapKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (r *RedisCache) SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.cli.Set(ctx, r.wrapKey(key), value, ttl).Err()
}

func (r *RedisCache) Close() error {
	return r.cli.Close()
}

func (r *RedisCache) wrapKey(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}
