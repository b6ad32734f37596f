package repository

import (
	"context"

	"redditTelegramBot/internal/domain/entity"
)

// PostRepository returns the newest posts of one or more subreddits,
// newest first, at most limit of them.
type PostRepository interface {
	FetchNew(ctx context.Context, subreddits []string, limit int) ([]*entity.Post, error)
}
