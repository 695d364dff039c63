package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/internal/core/port"
)

var _ port.CachePort = (*RedisCache)(nil)

type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisCache(client *redis.Client, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger,
	}
}

// Ping checks the connection to the Redis server.
func (c *RedisCache) Ping(ctx context.Context) string {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Sprintf("down: %v", err)
	}
	return "up"
}

// Get returns the payload stored under key. Absent keys and read failures
// both come back as domain.ErrCacheMiss; a broken cache degrades to direct
// computation, it never fails a request.
func (c *RedisCache) Get(ctx context.Context, key domain.CacheKey) ([]byte, error) {
	payload, err := c.client.Get(ctx, key.String()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed, treating as miss",
				slog.String("key", key.String()),
				slog.Any("error", err))
		}
		return nil, domain.ErrCacheMiss
	}

	return payload, nil
}

// Set stores payload under key with the given TTL. Entries are replaced
// wholesale; there are no partial updates.
func (c *RedisCache) Set(ctx context.Context, key domain.CacheKey, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key.String(), payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}
