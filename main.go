package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"redditTelegramBot/internal/application"
	"redditTelegramBot/internal/infrastructure/logger"
	"redditTelegramBot/internal/infrastructure/reddit"
	"redditTelegramBot/internal/infrastructure/storage"
	"redditTelegramBot/internal/infrastructure/telegram"
	"redditTelegramBot/internal/interfaces/config"
)

const banner = "============================================================"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	fmt.Println(banner)
	fmt.Println("Reddit to Telegram Notification Bot")
	fmt.Println(banner)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	postRepo, err := reddit.NewPostRepository(reddit.Config{
		Source:       cfg.RedditSource,
		ClientID:     cfg.RedditClientID,
		ClientSecret: cfg.RedditClientSecret,
		Username:     cfg.RedditUsername,
		Password:     cfg.RedditPassword,
		UserAgent:    cfg.RedditUserAgent,
	})
	if err != nil {
		log.Fatal("Failed to initialize reddit client", logger.Error(err))
	}

	messageRepo, err := telegram.NewMessageRepository(telegram.Config{
		Token:          cfg.TelegramBotToken,
		ChatID:         cfg.TelegramChatID,
		APIEndpoint:    cfg.TelegramAPIEndpoint,
		MaxPermits:     cfg.MaxPermits,
		RefillInterval: cfg.GetRefillInterval(),
	})
	if err != nil {
		log.Fatal("Failed to initialize telegram bot", logger.Error(err))
	}

	processedRepo, err := storage.NewProcessedRepository(cfg.ProcessedStrategy, cfg.ProcessedLimit)
	if err != nil {
		log.Fatal("Failed to initialize processed store", logger.Error(err))
	}

	service := application.NewMonitorService(
		postRepo,
		messageRepo,
		processedRepo,
		log,
		application.Options{
			Subreddits: cfg.Subreddits,
			Keywords:   cfg.Keywords,
			FetchLimit: cfg.FetchLimit,
		},
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info("Shutdown signal received")
		cancel()
	}()

	interval := cfg.GetCheckInterval()
	log.Info("Starting Reddit monitor...")
	log.Info("Monitoring subreddits", logger.String("subreddits", reddit.JoinSubreddits(cfg.Subreddits)), logger.String("source", cfg.RedditSource))
	log.Info("Looking for keywords", logger.Strings("keywords", cfg.Keywords))
	log.Info("Check interval", logger.Duration("interval", interval))

	if err := service.Run(ctx, interval); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Monitor stopped", logger.Error(err))
		return
	}
	log.Info("Shutting down...")
}
