package reddit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"redditTelegramBot/internal/domain/entity"
	"redditTelegramBot/internal/domain/repository"
	"redditTelegramBot/internal/infrastructure/html"
)

const defaultFeedBaseURL = "https://www.reddit.com"

type feedRepository struct {
	parser  *gofeed.Parser
	baseURL string
}

// NewFeedRepository reads the public Atom listing of /r/{subs}/new.
func NewFeedRepository(baseURL, userAgent string) repository.PostRepository {
	if baseURL == "" {
		baseURL = defaultFeedBaseURL
	}

	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = newHTTPClient(DefaultTimeout)

	return &feedRepository{
		parser:  parser,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (r *feedRepository) FetchNew(ctx context.Context, subreddits []string, limit int) ([]*entity.Post, error) {
	url := fmt.Sprintf("%s/r/%s/new/.rss?limit=%d", r.baseURL, JoinSubreddits(subreddits), limit)

	feed, err := r.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subreddit feed: %w", err)
	}

	posts := make([]*entity.Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		if limit > 0 && len(posts) >= limit {
			break
		}
		posts = append(posts, itemToPost(item))
	}

	return posts, nil
}

func itemToPost(item *gofeed.Item) *entity.Post {
	permalink := relativePermalink(item.Link)

	subreddit := subredditFromPermalink(permalink)
	if len(item.Categories) > 0 && item.Categories[0] != "" {
		subreddit = item.Categories[0]
	}

	var author string
	if item.Author != nil {
		author = strings.TrimPrefix(strings.TrimSpace(item.Author.Name), "/u/")
	}

	body, err := html.ExtractText(item.Content)
	if err != nil {
		body = item.Description
	}

	var created time.Time
	switch {
	case item.PublishedParsed != nil:
		created = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		created = *item.UpdatedParsed
	}

	id := item.GUID
	if id == "" {
		id = permalink
	}

	return entity.NewPost(
		strings.TrimPrefix(id, "t3_"),
		subreddit,
		item.Title,
		author,
		body,
		0,
		permalink,
		created,
	)
}
