package repository

import "context"

// ProcessedRepository remembers which post IDs have already been evaluated.
type ProcessedRepository interface {
	IsProcessed(ctx context.Context, id string) (bool, error)
	MarkAsProcessed(ctx context.Context, id string) error
	// Cleanup enforces the size policy and returns how many IDs were dropped.
	Cleanup(ctx context.Context) (int, error)
	Len(ctx context.Context) (int, error)
}
