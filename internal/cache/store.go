package cache

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/hero-api/internal/config"
)

var (
	// ErrCacheMiss is returned by a Store when the key is absent or expired.
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry is returned when a stored payload cannot be decoded.
	ErrInvalidEntry = errors.New("invalid cache entry")
)

// Entry is a captured HTTP response.
type Entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Store keeps entries for a limited time.
type Store interface {
	Get(ctx context.Context, key string) (Entry, error)
	Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error
}

// NewStore returns a RedisStore when a Redis address is configured and a
// MemoryStore otherwise. The returned close func releases the Redis client.
func NewStore(ctx context.Context, cfg config.Cache) (Store, func() error, error) {
	if cfg.RedisAddress == "" {
		return NewMemoryStore(), func() error { return nil }, nil
	}

	client, err := NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return NewRedisStore(client), client.Close, nil
}
