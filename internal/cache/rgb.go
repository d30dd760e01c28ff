package cache

import (
	"context"
	"sync"
)

// RGBCache stores resolved color RGB values across lookups. Get returns ""
// on a miss; only non-empty values are ever stored.
type RGBCache interface {
	Get(ctx context.Context, colorID string) (string, error)
	Set(ctx context.Context, colorID, rgb string) error
}

type memoryCache struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an in-process RGB cache.
func NewMemory() RGBCache {
	return &memoryCache{
		values: make(map[string]string),
	}
}

func (c *memoryCache) Get(_ context.Context, colorID string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[colorID], nil
}

func (c *memoryCache) Set(_ context.Context, colorID, rgb string) error {
	if rgb == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[colorID] = rgb
	return nil
}
