package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/gridstats/internal/api"
	"github.com/vytor/gridstats/internal/cache"
	"github.com/vytor/gridstats/internal/config"
	"github.com/vytor/gridstats/internal/db"
	"github.com/vytor/gridstats/internal/jobs"
	"github.com/vytor/gridstats/internal/logger"
	"github.com/vytor/gridstats/internal/repository/sqlite"
	"github.com/vytor/gridstats/internal/services"
	"github.com/vytor/gridstats/internal/statsapi"
	"github.com/vytor/gridstats/internal/trend"
	"github.com/vytor/gridstats/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("gridstats server starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("stats_api_url=%s", cfg.StatsAPIURL)
	log.Debug("stats_api_timeout=%v", cfg.StatsAPITimeout)
	log.Debug("redis_enabled=%t", cfg.RedisURL != "")
	log.Debug("cache_ttl=%v", cfg.CacheTTL)
	log.Debug("sync_worker_count=%d", cfg.SyncWorkerCount)
	log.Debug("sync_queue_size=%d", cfg.SyncQueueSize)
	log.Debug("max_concurrent_fetch=%d", cfg.MaxConcurrentFetch)
	log.Debug("trend_window=%d, trend_top_n=%d", cfg.TrendWindow, cfg.TrendTopN)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Shared cache, optional
	var sharedCache cache.Cache = cache.Nop{}
	var cachePinger api.CachePinger
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, continuing without shared cache: %v", err)
		} else {
			sharedCache = redisCache
			cachePinger = redisCache
			defer redisCache.Close()
			log.Info("redis cache enabled")
		}
	}

	client := statsapi.NewCachedClient(
		statsapi.New(cfg.StatsAPIURL, cfg.StatsAPITimeout),
		sharedCache,
		cfg.CacheTTL,
	)

	// Initialize repositories
	gameRepo := sqlite.NewGameRepository(database.DB)
	gradeRepo := sqlite.NewGradeRepository(database.DB)
	syncRepo := sqlite.NewSyncRepository(database.DB)

	// Initialize services
	aggregator := trend.Aggregator{Window: cfg.TrendWindow, TopN: cfg.TrendTopN}
	seasonService := services.NewSeasonService(gameRepo, gradeRepo, syncRepo, client, cfg.MaxConcurrentFetch)
	trendService := services.NewTrendService(seasonService, aggregator)
	dashboardService := services.NewDashboardService(seasonService, client, aggregator)

	// Initialize worker pool
	syncPool := worker.NewPool(cfg.SyncWorkerCount, cfg.SyncQueueSize)
	syncPool.Start(ctx)
	jobQueue := jobs.NewWorkerQueue(syncPool, seasonService)

	srv := &api.Server{
		DB:               database,
		Cache:            cachePinger,
		SeasonService:    seasonService,
		TrendService:     trendService,
		DashboardService: dashboardService,
		JobQueue:         jobQueue,
		CORSOrigins:      cfg.CORSOrigins,
		RequestTimeout:   25 * time.Second,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping sync pool")
	syncPool.Stop()
	cancel()

	log.Info("===========================================")
	log.Info("gridstats server stopped")
	log.Info("===========================================")
}
