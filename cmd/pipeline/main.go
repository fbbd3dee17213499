package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"news_pipeline/internal/classifier/llm"
	"news_pipeline/internal/config"
	"news_pipeline/internal/publisher"
	"news_pipeline/internal/scheduler"
	"news_pipeline/internal/service"
	"news_pipeline/internal/source/scraper"
	"news_pipeline/internal/storage/kv"
	"news_pipeline/internal/voice"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, err := kv.NewRedisBackend(ctx, kv.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer backend.Close()
	logger.Info("connected to redis", "addr", cfg.Redis.Addr)

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	storyStore := kv.NewStoryStore(backend, logger)
	researchStore := kv.NewResearchStore(backend, cfg.Research.RetentionDays, logger)
	podcastStore := kv.NewPodcastStore(backend, logger)

	// Initialize collaborators
	llmClient := llm.New(llm.Config{
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		Timeout:        cfg.LLM.Timeout,
		MaxAttempts:    cfg.LLM.Retry.MaxAttempts,
		InitialBackoff: cfg.LLM.Retry.InitialBackoff,
		MaxBackoff:     cfg.LLM.Retry.MaxBackoff,
	}, logger)

	feedSource := scraper.New(scraper.Config{
		BaseURL:        cfg.Scraper.BaseURL,
		PageSize:       cfg.Scraper.PageSize,
		Timeout:        cfg.Scraper.Timeout,
		MaxAttempts:    cfg.Scraper.Retry.MaxAttempts,
		InitialBackoff: cfg.Scraper.Retry.InitialBackoff,
		MaxBackoff:     cfg.Scraper.Retry.MaxBackoff,
	}, logger)

	voicer := voice.New(voice.Config{
		BaseURL: cfg.Voice.BaseURL,
		Voice:   cfg.Voice.Voice,
		Timeout: cfg.Voice.Timeout,
	}, logger)

	// Assemble pipeline stages
	filterService := service.NewFilterService(storyStore, llmClient, llmClient, rabbitMQ, logger, cfg.Filter)
	enhanceService := service.NewEnhanceService(storyStore, llmClient, logger)
	publishService := service.NewPublishService(storyStore, rabbitMQ, logger)
	podcastService := service.NewPodcastService(storyStore, podcastStore, llmClient, voicer, logger, cfg.Podcast)

	pipeline := service.NewPipelineService(
		feedSource,
		researchStore,
		filterService,
		enhanceService,
		publishService,
		podcastService,
		logger,
		cfg.Pipeline,
	)

	sched := scheduler.NewScheduler(pipeline, cfg.Pipeline.Interval, cfg.Pipeline.RunTimeout, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting news pipeline",
		"source", feedSource.Name(),
		"interval", cfg.Pipeline.Interval,
		"max_pages", cfg.Pipeline.MaxPagesPerRun,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
