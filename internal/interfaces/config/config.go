package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	RedditSource       string `envconfig:"REDDIT_SOURCE" default:"api"`
	RedditClientID     string `envconfig:"REDDIT_CLIENT_ID"`
	RedditClientSecret string `envconfig:"REDDIT_CLIENT_SECRET"`
	RedditUsername     string `envconfig:"REDDIT_USERNAME"`
	RedditPassword     string `envconfig:"REDDIT_PASSWORD"`
	RedditUserAgent    string `envconfig:"REDDIT_USER_AGENT" default:"reddit-telegram-bot/1.0"`

	Subreddits []string `envconfig:"SUBREDDITS"`
	Keywords   []string `envconfig:"KEYWORDS"`

	CheckInterval int `envconfig:"CHECK_INTERVAL" default:"60"`
	FetchLimit    int `envconfig:"FETCH_LIMIT" default:"25"`

	ProcessedStrategy string `envconfig:"PROCESSED_STRATEGY" default:"clear"`
	ProcessedLimit    int    `envconfig:"PROCESSED_LIMIT" default:"1000"`

	TelegramBotToken    string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	TelegramChatID      string `envconfig:"TELEGRAM_CHAT_ID" required:"true"`
	TelegramAPIEndpoint string `envconfig:"TELEGRAM_API_ENDPOINT"`

	MaxPermits int `envconfig:"MAX_PERMITS" default:"3"`

	RefillInterval int `envconfig:"REFILL_INTERVAL" default:"10"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if subs := loadNumbered("SUBREDDIT"); len(subs) > 0 {
		cfg.Subreddits = subs
	}
	if kws := loadNumbered("KEYWORD"); len(kws) > 0 {
		cfg.Keywords = kws
	}
	cfg.Subreddits = cleanList(cfg.Subreddits)
	cfg.Keywords = cleanList(cfg.Keywords)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.TelegramBotToken == "" || c.TelegramChatID == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required")
	}
	if len(c.Subreddits) == 0 {
		return fmt.Errorf("no subreddits configured. Please set SUBREDDITS or SUBREDDIT_1, SUBREDDIT_2, etc.")
	}
	if len(c.Keywords) == 0 {
		return fmt.Errorf("no keywords configured. Please set KEYWORDS or KEYWORD_1, KEYWORD_2, etc.")
	}

	switch c.RedditSource {
	case "api":
		if c.RedditClientID == "" || c.RedditClientSecret == "" {
			return fmt.Errorf("REDDIT_CLIENT_ID and REDDIT_CLIENT_SECRET are required when REDDIT_SOURCE=api")
		}
		if (c.RedditUsername == "") != (c.RedditPassword == "") {
			return fmt.Errorf("REDDIT_USERNAME and REDDIT_PASSWORD must be set together")
		}
	case "readonly", "rss":
	default:
		return fmt.Errorf("unknown REDDIT_SOURCE: %s (use 'api', 'readonly' or 'rss')", c.RedditSource)
	}

	switch c.ProcessedStrategy {
	case "clear", "lru":
	default:
		return fmt.Errorf("unknown PROCESSED_STRATEGY: %s (use 'clear' or 'lru')", c.ProcessedStrategy)
	}

	if c.CheckInterval <= 0 {
		return fmt.Errorf("CHECK_INTERVAL must be positive, got %d", c.CheckInterval)
	}
	if c.FetchLimit <= 0 || c.FetchLimit > 100 {
		return fmt.Errorf("FETCH_LIMIT must be between 1 and 100, got %d", c.FetchLimit)
	}
	if c.ProcessedLimit <= 0 {
		return fmt.Errorf("PROCESSED_LIMIT must be positive, got %d", c.ProcessedLimit)
	}

	return nil
}

// loadNumbered reads PREFIX_1, PREFIX_2, ... until the first gap.
func loadNumbered(prefix string) []string {
	var values []string

	for i := 1; ; i++ {
		key := fmt.Sprintf("%s_%d", prefix, i)
		val := os.Getenv(key)
		if val == "" {
			break
		}
		values = append(values, val)
	}

	return values
}

func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}

func (c *Config) GetCheckInterval() time.Duration {
	return time.Duration(c.CheckInterval) * time.Second
}

func (c *Config) GetRefillInterval() time.Duration {
	return time.Duration(c.RefillInterval) * time.Second
}
