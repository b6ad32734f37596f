package reddit

import (
	"fmt"
	"time"

	"redditTelegramBot/internal/domain/repository"
)

const (
	SourceAPI      = "api"
	SourceReadonly = "readonly"
	SourceRSS      = "rss"
)

type Config struct {
	Source       string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
	// FeedBaseURL overrides https://www.reddit.com for the rss source.
	FeedBaseURL string
	// APIBaseURL overrides the JSON API host for the api and readonly sources.
	APIBaseURL string
	TokenURL   string
	Timeout    time.Duration
}

// NewPostRepository selects the implementation for cfg.Source.
func NewPostRepository(cfg Config) (repository.PostRepository, error) {
	switch cfg.Source {
	case SourceAPI, "":
		return NewAPIRepository(cfg)
	case SourceReadonly:
		return NewReadonlyRepository(cfg)
	case SourceRSS:
		return NewFeedRepository(cfg.FeedBaseURL, cfg.UserAgent), nil
	default:
		return nil, fmt.Errorf("unknown reddit source: %s (use '%s', '%s' or '%s')", cfg.Source, SourceAPI, SourceReadonly, SourceRSS)
	}
}
