package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"coverage_migrator/internal/attachment"
	"coverage_migrator/internal/config"
	"coverage_migrator/internal/destination/prezly"
	"coverage_migrator/internal/mapper"
	"coverage_migrator/internal/publisher"
	"coverage_migrator/internal/service"
	"coverage_migrator/internal/source/belga"
	"coverage_migrator/internal/storage/postgres"
	"coverage_migrator/internal/uploader"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	boardUUID := flag.String("board", "", "belga board uuid to migrate")
	newsroomID := flag.Int64("newsroom", 0, "prezly newsroom id owning the created coverage")
	offset := flag.Int("offset", 0, "listing offset to start from (-1 resumes from the journal)")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	if err := uuid.Validate(*boardUUID); err != nil {
		logger.Error("a valid -board uuid is required", "error", err)
		os.Exit(1)
	}
	if *newsroomID <= 0 {
		logger.Error("a positive -newsroom id is required")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Optional sync journal
	var journal service.Journal
	if cfg.Database.Enabled() {
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		journal = postgres.NewJournal(db)
		logger.Info("sync journal enabled")
	}

	// Optional event publisher
	var events service.Publisher
	if cfg.RabbitMQ.Enabled() {
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
		events = rabbitMQ
	}

	authenticator, err := belga.DiscoverAuthenticator(
		ctx,
		&http.Client{Timeout: cfg.Belga.Timeout},
		cfg.Belga.OIDCWellKnownURI,
		cfg.Belga.ClientID,
		cfg.Belga.ClientSecret,
	)
	if err != nil {
		logger.Error("failed to discover belga token endpoint", "error", err)
		os.Exit(1)
	}

	belgaClient := belga.New(belga.Config{
		BaseURI:     cfg.Belga.BaseURI,
		Timeout:     cfg.Belga.Timeout,
		PageSize:    cfg.Sync.PageSize,
		MaxAttempts: cfg.Sync.PageRetries,
	}, authenticator, logger)

	prezlyClient := prezly.New(prezly.Config{
		BaseURI:     cfg.Prezly.BaseURI,
		AccessToken: cfg.Prezly.AccessToken,
		Timeout:     cfg.Prezly.Timeout,
	}, logger)

	uploadcare := uploader.New(uploader.Config{
		BaseURI:   cfg.Uploadcare.BaseURI,
		PublicKey: cfg.Uploadcare.PublicKey,
		Timeout:   cfg.Uploadcare.Timeout,
	}, logger)

	resolver := attachment.NewResolver(uploadcare, cfg.Sync.UploadRetries, logger)

	syncService := service.NewSyncService(
		belgaClient,
		prezlyClient,
		mapper.New(resolver, logger),
		journal,
		events,
		logger,
		cfg.Sync,
	)

	logger.Info("starting coverage migration",
		"board", *boardUUID,
		"newsroom", *newsroomID,
		"offset", *offset,
	)

	if _, err := syncService.Sync(ctx, *boardUUID, *newsroomID, *offset); err != nil {
		logger.Error("migration aborted", "error", err)
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
