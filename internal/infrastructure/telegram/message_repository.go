package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"redditTelegramBot/internal/domain/entity"
	"redditTelegramBot/internal/domain/repository"
)

type messageRepository struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	channel  string
	limiter  *rate.Limiter
	scrubber *strings.Replacer
}

type Config struct {
	Token  string
	ChatID string
	// APIEndpoint is a format string taking the token and the method name.
	APIEndpoint    string
	MaxPermits     int
	RefillInterval time.Duration
	Timeout        time.Duration
}

// NewMessageRepository connects to the Bot API and verifies the token.
func NewMessageRepository(cfg Config) (repository.MessageRepository, error) {
	if cfg.Token == "" {
		return nil, errors.New("telegram bot token is required")
	}
	chatID, channel, err := parseChatID(cfg.ChatID)
	if err != nil {
		return nil, err
	}

	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	scrubber := strings.NewReplacer(cfg.Token, "[EXPUNGED]")

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.Token, endpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %s", scrubber.Replace(err.Error()))
	}

	return &messageRepository{
		bot:      bot,
		chatID:   chatID,
		channel:  channel,
		limiter:  newLimiter(cfg.MaxPermits, cfg.RefillInterval),
		scrubber: scrubber,
	}, nil
}

func newLimiter(maxPermits int, refillInterval time.Duration) *rate.Limiter {
	if maxPermits <= 0 {
		maxPermits = 3
	}
	if refillInterval <= 0 {
		refillInterval = 10 * time.Second
	}
	return rate.NewLimiter(rate.Every(refillInterval), maxPermits)
}

// parseChatID accepts a numeric chat ID or a channel username.
func parseChatID(s string) (int64, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "", errors.New("telegram chat id is required")
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, "", nil
	}
	if !strings.HasPrefix(s, "@") {
		s = "@" + s
	}
	return 0, s, nil
}

func (r *messageRepository) Send(ctx context.Context, msg *entity.Message) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	var cfg tgbotapi.MessageConfig
	if r.channel != "" {
		cfg = tgbotapi.NewMessageToChannel(r.channel, msg.Text)
	} else {
		cfg = tgbotapi.NewMessage(r.chatID, msg.Text)
	}
	cfg.ParseMode = string(msg.ParseMode)
	cfg.DisableWebPagePreview = msg.DisableWebPagePreview

	if _, err := r.bot.Send(cfg); err != nil {
		return fmt.Errorf("telegram API error: %s", r.scrubber.Replace(err.Error()))
	}

	return nil
}
