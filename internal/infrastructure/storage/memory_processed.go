package storage

import (
	"context"
	"sync"

	"redditTelegramBot/internal/domain/repository"
)

// memoryProcessed grows without bound between cleanups and is emptied
// entirely once it holds more than limit IDs.
type memoryProcessed struct {
	mu    sync.RWMutex
	limit int
	ids   map[string]struct{}
}

func NewMemoryProcessedRepository(limit int) repository.ProcessedRepository {
	if limit <= 0 {
		limit = DefaultProcessedLimit
	}
	return &memoryProcessed{
		limit: limit,
		ids:   make(map[string]struct{}),
	}
}

func (c *memoryProcessed) IsProcessed(ctx context.Context, id string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.ids[id]
	return ok, nil
}

func (c *memoryProcessed) MarkAsProcessed(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ids[id] = struct{}{}
	return nil
}

func (c *memoryProcessed) Cleanup(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.ids)
	if n <= c.limit {
		return 0, nil
	}
	clear(c.ids)
	return n, nil
}

func (c *memoryProcessed) Len(ctx context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.ids), nil
}
