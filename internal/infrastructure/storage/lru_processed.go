package storage

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"redditTelegramBot/internal/domain/repository"
)

// lruProcessed keeps only the limit most recently seen IDs. Evictions
// happen on insert, so Cleanup never has anything to drop.
type lruProcessed struct {
	cache *lru.Cache[string, struct{}]
}

func NewLRUProcessedRepository(limit int) (repository.ProcessedRepository, error) {
	if limit <= 0 {
		limit = DefaultProcessedLimit
	}
	cache, err := lru.New[string, struct{}](limit)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &lruProcessed{cache: cache}, nil
}

func (c *lruProcessed) IsProcessed(ctx context.Context, id string) (bool, error) {
	return c.cache.Contains(id), nil
}

func (c *lruProcessed) MarkAsProcessed(ctx context.Context, id string) error {
	c.cache.Add(id, struct{}{})
	return nil
}

func (c *lruProcessed) Cleanup(ctx context.Context) (int, error) {
	return 0, nil
}

func (c *lruProcessed) Len(ctx context.Context) (int, error) {
	return c.cache.Len(), nil
}
