package storage

import (
	"fmt"

	"redditTelegramBot/internal/domain/repository"
)

const (
	StrategyClear = "clear"
	StrategyLRU   = "lru"

	DefaultProcessedLimit = 1000
)

// NewProcessedRepository builds the processed-ID store for strategy.
func NewProcessedRepository(strategy string, limit int) (repository.ProcessedRepository, error) {
	switch strategy {
	case StrategyClear, "":
		return NewMemoryProcessedRepository(limit), nil
	case StrategyLRU:
		return NewLRUProcessedRepository(limit)
	default:
		return nil, fmt.Errorf("unknown processed strategy: %s", strategy)
	}
}
