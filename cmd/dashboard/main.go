package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news_dashboard/internal/config"
	"news_dashboard/internal/fetcher"
	"news_dashboard/internal/filter"
	"news_dashboard/internal/logger"
	"news_dashboard/internal/server"
	"news_dashboard/internal/server/middleware"
	"news_dashboard/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	godotenv.Load()

	logger.Init()
	defer logger.Log.Info("Application stopped")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Log.Fatalf("Config load error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatalf("Config validation error: %v", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Log.Fatalf("Storage error: %v", err)
	}
	defer store.Close()

	rate, ok, err := store.GetRate(ctx)
	if err != nil {
		logger.Log.Fatalf("Rate load error: %v", err)
	}
	if !ok {
		rate = cfg.DefaultRate
	}

	timeout := time.Duration(cfg.FetchTimeoutSecs) * time.Second
	fetchSvc := fetcher.NewService(
		store,
		timeout,
		fetcher.NewNewsClient(cfg.NewsAPIURL, cfg.NewsAPIKey, timeout),
		fetcher.NewBlogClient(cfg.BlogAPIURL, timeout),
	)

	snap := fetchSvc.Refresh(ctx)
	logger.Log.WithFields(map[string]interface{}{
		"articles": len(snap.Articles),
		"errors":   len(snap.Errors),
	}).Info("Initial fetch complete")

	filterStore := filter.NewStore()
	srv := server.NewServer(cfg, fetchSvc, filterStore, store, rate)

	mux := http.NewServeMux()
	srv.Routes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.MetricsMiddleware(mux)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RequestIDMiddleware(handler)

	httpServer := &http.Server{Addr: cfg.ListenAddr, Handler: handler}
	go func() {
		logger.Log.Infof("Starting HTTP server on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down...")
	ctxShutdown, cancelShutdown := context.WithTimeout(ctx, 5*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		logger.Log.Fatalf("Forced shutdown: %v", err)
	}
}
