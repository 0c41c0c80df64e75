package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"trendhub/internal/config"
	"trendhub/internal/publisher"
	"trendhub/internal/scheduler"
	"trendhub/internal/server"
	"trendhub/internal/service"
	"trendhub/internal/source/football"
	"trendhub/internal/source/github"
	"trendhub/internal/source/hackernews"
	"trendhub/internal/source/newsapi"
	"trendhub/internal/source/reddit"
	"trendhub/internal/source/youtube"
	"trendhub/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
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

	var pub service.Publisher
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
		pub = rabbitMQ
	}

	userStore := postgres.NewUserStore(db)
	favoriteStore := postgres.NewFavoriteStore(db)
	historyStore := postgres.NewHistoryStore(db)
	txManager := postgres.NewTransactionManager(db)

	up := cfg.Upstream
	trendsService := service.NewTrendsService(
		reddit.New(reddit.Config{
			BaseURL:   up.RedditBaseURL,
			UserAgent: up.UserAgent,
			Timeout:   up.Timeout,
		}, logger),
		github.New(github.Config{
			BaseURL:   up.GitHubBaseURL,
			UserAgent: up.UserAgent,
			Timeout:   up.Timeout,
		}, logger),
		hackernews.New(hackernews.Config{
			BaseURL:      up.HackerNews.BaseURL,
			UserAgent:    up.UserAgent,
			Timeout:      up.Timeout,
			ItemInterval: up.HackerNews.ItemInterval,
		}, logger),
		newsapi.New(newsapi.Config{
			BaseURL:   up.NewsAPI.BaseURL,
			APIKey:    up.NewsAPI.APIKey,
			UserAgent: up.UserAgent,
			Timeout:   up.Timeout,
		}, logger),
		football.New(football.Config{
			BaseURL:   up.Football.BaseURL,
			APIKey:    up.Football.APIKey,
			UserAgent: up.UserAgent,
			Timeout:   up.Timeout,
		}, logger),
		youtube.New(youtube.Config{
			BaseURL:   up.YouTube.BaseURL,
			APIKey:    up.YouTube.APIKey,
			UserAgent: up.UserAgent,
			Timeout:   up.Timeout,
		}, logger),
		logger,
		up.HackerNews.TopLimit,
		up.HackerNews.SearchLimit,
	)

	accountService := service.NewAccountService(
		userStore,
		favoriteStore,
		historyStore,
		txManager,
		pub,
		logger,
		cfg.History.ReadLimit,
	)

	srv := server.New(trendsService, accountService, cfg.Server, cfg.OAuth, logger)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	retention := time.Duration(cfg.History.RetentionDays) * 24 * time.Hour
	pruner := scheduler.NewScheduler(accountService, cfg.History.PruneInterval, retention, logger)
	go func() {
		if err := pruner.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler error", "error", err)
		}
	}()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("starting trendhub server", "addr", cfg.Server.Addr)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
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
