package reddit

import (
	"context"
	"fmt"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"redditTelegramBot/internal/domain/entity"
	"redditTelegramBot/internal/domain/repository"
)

const (
	defaultOAuthBaseURL = "https://oauth.reddit.com"
	defaultTokenURL     = "https://www.reddit.com/api/v1/access_token"
)

type apiRepository struct {
	client *reddit.Client
}

// NewAPIRepository returns a repository backed by the OAuth API. With a
// username and password it logs in as that account, otherwise it logs in as
// the application itself (client credentials grant).
func NewAPIRepository(cfg Config) (repository.PostRepository, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("reddit client id and secret are required for the %s source", SourceAPI)
	}

	var (
		client *reddit.Client
		err    error
	)
	if cfg.Username != "" && cfg.Password != "" {
		client, err = newUserClient(cfg)
	} else {
		client, err = newAppClient(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create reddit client: %w", err)
	}

	return &apiRepository{client: client}, nil
}

func newUserClient(cfg Config) (*reddit.Client, error) {
	creds := reddit.Credentials{
		ID:       cfg.ClientID,
		Secret:   cfg.ClientSecret,
		Username: cfg.Username,
		Password: cfg.Password,
	}

	opts := []reddit.Opt{
		reddit.WithUserAgent(cfg.UserAgent),
		reddit.WithHTTPClient(newHTTPClient(cfg.Timeout)),
	}
	if cfg.APIBaseURL != "" {
		opts = append(opts, reddit.WithBaseURL(cfg.APIBaseURL))
	}
	if cfg.TokenURL != "" {
		opts = append(opts, reddit.WithTokenURL(cfg.TokenURL))
	}

	return reddit.NewClient(creds, opts...)
}

// newAppClient authenticates with the client credentials grant and talks to
// the OAuth host. go-reddit only implements the password grant, so the token
// handling lives in the HTTP client handed to its read-only constructor.
func newAppClient(cfg Config) (*reddit.Client, error) {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = defaultOAuthBaseURL
	}

	base := newHTTPClient(cfg.Timeout)
	base.Transport = &userAgentTransport{userAgent: cfg.UserAgent, base: base.Transport}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	httpClient := cc.Client(ctx)
	httpClient.Timeout = base.Timeout

	return reddit.NewReadonlyClient(
		reddit.WithUserAgent(cfg.UserAgent),
		reddit.WithHTTPClient(httpClient),
		reddit.WithBaseURL(baseURL),
	)
}

// NewReadonlyRepository returns a repository that uses the unauthenticated
// JSON endpoints.
func NewReadonlyRepository(cfg Config) (repository.PostRepository, error) {
	opts := []reddit.Opt{
		reddit.WithUserAgent(cfg.UserAgent),
		reddit.WithHTTPClient(newHTTPClient(cfg.Timeout)),
	}
	if cfg.APIBaseURL != "" {
		opts = append(opts, reddit.WithBaseURL(cfg.APIBaseURL))
	}

	client, err := reddit.NewReadonlyClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create readonly reddit client: %w", err)
	}

	return &apiRepository{client: client}, nil
}

func (r *apiRepository) FetchNew(ctx context.Context, subreddits []string, limit int) ([]*entity.Post, error) {
	posts, _, err := r.client.Subreddit.NewPosts(ctx, JoinSubreddits(subreddits), &reddit.ListOptions{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("reddit api error: %w", err)
	}

	result := make([]*entity.Post, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}
		result = append(result, toPost(p))
	}
	return result, nil
}

func toPost(p *reddit.Post) *entity.Post {
	var created time.Time
	if p.Created != nil {
		created = p.Created.Time
	}

	subreddit := p.SubredditName
	permalink := relativePermalink(p.Permalink)
	if subreddit == "" {
		subreddit = subredditFromPermalink(permalink)
	}

	return entity.NewPost(
		p.ID,
		subreddit,
		p.Title,
		p.Author,
		p.Body,
		p.Score,
		permalink,
		created,
	)
}
