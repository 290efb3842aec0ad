package cache

import (
	"context"
	"sync"
)

// MemoryPropertyCache is an in-process PropertyCache for tests and setups
// without Redis.
type MemoryPropertyCache struct {
	mu      sync.Mutex
	entries map[int64][]byte
}

func NewMemoryPropertyCache() *MemoryPropertyCache {
	return &MemoryPropertyCache{entries: make(map[int64][]byte)}
}

func (c *MemoryPropertyCache) Get(_ context.Context, ownerID int64) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[ownerID]
	return data, ok
}

func (c *MemoryPropertyCache) Set(_ context.Context, ownerID int64, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[ownerID] = payload
}

func (c *MemoryPropertyCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[int64][]byte)
}
