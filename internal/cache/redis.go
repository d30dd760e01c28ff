package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
}

// NewRedis returns a Redis-backed RGB cache. A zero ttl means no expiration.
func NewRedis(redisClient *redis.Client, ttl time.Duration) RGBCache {
	return &redisCache{
		redisClient: redisClient,
		keyPrefix:   "rebrickable:color:rgb:",
		ttl:         ttl,
	}
}

func (c *redisCache) Get(ctx context.Context, colorID string) (string, error) {
	val, err := c.redisClient.Get(ctx, c.keyPrefix+colorID).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get cached RGB for color %s: %w", colorID, err)
	}
	return val, nil
}

func (c *redisCache) Set(ctx context.Context, colorID, rgb string) error {
	if rgb == "" {
		return nil
	}
	if err := c.redisClient.Set(ctx, c.keyPrefix+colorID, rgb, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache RGB for color %s: %w", colorID, err)
	}
	return nil
}
