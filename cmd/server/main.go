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

	"newshub/internal/api"
	"newshub/internal/auth"
	"newshub/internal/config"
	"newshub/internal/scheduler"
	"newshub/internal/service"
	"newshub/internal/source/newsapi"
	"newshub/internal/storage/memory"
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

	// Process-lifetime stores, constructed once and passed by reference to
	// the scheduler and request handlers.
	cache := memory.NewCache()
	activity := memory.NewActivity()
	users := memory.NewUsers()

	source := newsapi.New(newsapi.Config{
		APIKey:  cfg.NewsAPI.APIKey,
		BaseURL: cfg.NewsAPI.BaseURL,
		Timeout: cfg.NewsAPI.Timeout,
	}, logger)

	newsService := service.NewNewsService(source, cache, cfg.Cache.TTL, logger)
	authService := auth.NewService(users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)

	sched := scheduler.New(newsService, cfg.Scheduler.Interval, cfg.Scheduler.Categories, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler error", "error", err)
		}
	}()

	server := api.NewServer(authService, newsService, activity, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("starting news server",
		"addr", cfg.Server.Addr,
		"cache_ttl", cfg.Cache.TTL,
		"refresh_interval", cfg.Scheduler.Interval,
		"categories", cfg.Scheduler.Categories,
	)

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
