package cache

import (
	"context"
	"fmt"
	"io"
	"time"
)

// BytesCache stores raw upstream bodies with a TTL.
type BytesCache interface {
	GetBytes(ctx context.Context, key string) (b []byte, ok bool, err error)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Backend names accepted by New.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Backend string
	Redis   RedisConfig
}

// New builds the configured backend. The returned closer releases connections
// and is never nil.
func New(cfg Config) (BytesCache, io.Closer, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewTTLCache(), nopCloser{}, nil
	case BackendRedis:
		rc, err := NewRedisCache(cfg.Redis)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return rc, rc, nil
	default:
		return nil, nopCloser{}, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Key builds the cache key for a proxied request.
func Key(path, rawQuery string) string {
	if rawQuery == "" {
		return "proxy:" + path
	}
	return "proxy:" + path + "?" + rawQuery
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
