package application

import (
	"context"
	"fmt"
	"time"

	"redditTelegramBot/internal/domain/entity"
	"redditTelegramBot/internal/domain/repository"
	"redditTelegramBot/internal/infrastructure/logger"
)

// logTitleLength is how much of a title is echoed in status lines.
const logTitleLength = 50

type Options struct {
	Subreddits []string
	Keywords   []string
	FetchLimit int
}

type MonitorService struct {
	postRepo      repository.PostRepository
	messageRepo   repository.MessageRepository
	processedRepo repository.ProcessedRepository
	log           logger.Logger
	opts          Options
}

func NewMonitorService(
	postRepo repository.PostRepository,
	messageRepo repository.MessageRepository,
	processedRepo repository.ProcessedRepository,
	log logger.Logger,
	opts Options,
) *MonitorService {
	if opts.FetchLimit <= 0 {
		opts.FetchLimit = 25
	}
	return &MonitorService{
		postRepo:      postRepo,
		messageRepo:   messageRepo,
		processedRepo: processedRepo,
		log:           log,
		opts:          opts,
	}
}

// ProcessCycle fetches the newest posts once, notifies about unseen matches
// and marks every unseen post as processed. Notification failures are logged
// and do not abort the cycle.
func (s *MonitorService) ProcessCycle(ctx context.Context) error {
	posts, err := s.postRepo.FetchNew(ctx, s.opts.Subreddits, s.opts.FetchLimit)
	if err != nil {
		return fmt.Errorf("failed to fetch new posts: %w", err)
	}

	for _, post := range posts {
		processed, err := s.processedRepo.IsProcessed(ctx, post.ID)
		if err != nil {
			return fmt.Errorf("failed to check if processed [ID: %s]: %w", post.ID, err)
		}
		if processed {
			continue
		}

		if post.Matches(s.opts.Keywords) {
			s.log.Info("Found matching post",
				logger.String("subreddit", post.Subreddit),
				logger.String("title", entity.Truncate(post.Title, logTitleLength)),
			)
			s.notify(ctx, post)
		}

		if err := s.processedRepo.MarkAsProcessed(ctx, post.ID); err != nil {
			return fmt.Errorf("failed to mark as processed [ID: %s]: %w", post.ID, err)
		}
	}

	removed, err := s.processedRepo.Cleanup(ctx)
	if err != nil {
		return fmt.Errorf("failed to clean up processed posts: %w", err)
	}
	if removed > 0 {
		s.log.Debug("Cleared processed posts", logger.Int("count", removed))
	}

	return nil
}

func (s *MonitorService) notify(ctx context.Context, post *entity.Post) {
	msg := entity.NewMessageFromPost(post)
	title := entity.Truncate(post.Title, logTitleLength)

	if err := s.messageRepo.Send(ctx, msg); err != nil {
		s.log.Error("Error sending message", logger.String("title", title), logger.Error(err))
		return
	}

	s.log.Info("Sent notification for post", logger.String("title", title))
}

// Run repeats ProcessCycle every interval until ctx is cancelled. Cycle
// errors are logged and the next cycle proceeds as usual.
func (s *MonitorService) Run(ctx context.Context, interval time.Duration) error {
	for {
		if err := s.runCycle(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.Error("Error in main loop", logger.Error(err))
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (s *MonitorService) runCycle(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during cycle: %v", r)
		}
	}()
	return s.ProcessCycle(ctx)
}
