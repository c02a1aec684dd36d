package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/bszymi/tv-shows-api/internal/config"
	"github.com/bszymi/tv-shows-api/internal/detector"
	"github.com/bszymi/tv-shows-api/internal/publisher"
	"github.com/bszymi/tv-shows-api/internal/scheduler"
	"github.com/bszymi/tv-shows-api/internal/service"
	"github.com/bszymi/tv-shows-api/internal/snapshot"
	"github.com/bszymi/tv-shows-api/internal/source/tvmaze"
	"github.com/bszymi/tv-shows-api/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	forceFull := flag.Bool("force-full-refresh", false, "bypass change detection for the first cycle")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *forceFull {
		cfg.Sync.ForceFullRefresh = true
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// The publisher is optional; without a broker URL persisted shows
	// simply go unannounced.
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
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
		pub = rabbitMQ
	}

	distributorStore := postgres.NewDistributorStore(db)
	tvShowStore := postgres.NewTVShowStore(db)
	releaseDateStore := postgres.NewReleaseDateStore(db)
	syncStateStore := postgres.NewSyncStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	feedSource := tvmaze.New(tvmaze.Config{
		URL:     cfg.Feed.URL,
		Timeout: cfg.Feed.Timeout,
	}, logger)

	snapshots := snapshot.NewFileStore(cfg.Snapshot.Path, logger)
	changeDetector := detector.New(snapshots, logger)

	reconciler := service.NewReconciler(
		distributorStore,
		tvShowStore,
		releaseDateStore,
		txManager,
		pub,
		logger,
	)

	syncService := service.NewSyncService(
		feedSource,
		changeDetector,
		reconciler,
		syncStateStore,
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(syncService, scheduler.Config{
		Interval:       cfg.Sync.Interval,
		MaxAttempts:    cfg.Sync.Retry.MaxAttempts,
		InitialBackoff: cfg.Sync.Retry.InitialBackoff,
		MaxBackoff:     cfg.Sync.Retry.MaxBackoff,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting tv show syncer",
		"source", feedSource.Name(),
		"interval", cfg.Sync.Interval,
		"snapshot", cfg.Snapshot.Path,
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
