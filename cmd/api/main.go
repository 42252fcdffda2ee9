// ABOUTME: Main entry point for the PageSense API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pagesense-api/api"
	"pagesense-api/api/handlers"
	"pagesense-api/core/inference"
	"pagesense-api/core/interfaces"
	"pagesense-api/infrastructure/cache/memory"
	"pagesense-api/infrastructure/cache/redis"
	"pagesense-api/infrastructure/cache/sqlite"
	stdhttp "pagesense-api/infrastructure/http/standard"
	logruslogger "pagesense-api/infrastructure/logger/logrus"
	stdlogger "pagesense-api/infrastructure/logger/standard"
	"pagesense-api/infrastructure/render/headless"
	"pagesense-api/infrastructure/render/static"
	"pagesense-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(cfg.Logging)
	logger.Info("Starting PageSense API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"renderer":   cfg.Renderer.Mode,
		"oracle":     cfg.Oracle.Enabled(),
	})

	cache := newCache(cfg, logger)
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Oracle.Timeout())

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	var oracle *inference.OracleAdapter
	if cfg.Oracle.Enabled() {
		oracle = inference.NewOracleAdapter(inference.OracleConfig{
			Token:   cfg.Oracle.Token,
			BaseURL: cfg.Oracle.BaseURL,
			Model:   cfg.Oracle.Model,
			Timeout: cfg.Oracle.Timeout(),
		}, deps)
	}
	engine := inference.NewEngine(deps, oracle)

	var renderer interfaces.Renderer
	switch cfg.Renderer.Mode {
	case config.RendererHeadless:
		renderer = headless.NewRenderer(cfg.Renderer.NavTimeout(), logger)
	default:
		renderer = static.NewRenderer(cfg.Renderer.NavTimeout(), logger)
	}

	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	})

	resultTTL := time.Duration(cfg.Cache.ResultTTL) * time.Second

	analyzeHandler := handlers.NewAnalyzeHandler(engine, renderer, cache, resultTTL)
	analyzeHandler.RegisterRoutes(humaAPI)

	previewHandler := handlers.NewPreviewHandler(engine, renderer)
	previewHandler.RegisterRoutes(humaAPI)

	scrapeHandler := handlers.NewScrapeHandler(engine, renderer, cache, resultTTL)
	scrapeHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler(cfg.Oracle.Enabled(), cfg.Renderer.Mode, cfg.Cache.Type)
	healthHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// newLogger selects the logger backend from config
func newLogger(cfg config.LoggingConfig) interfaces.Logger {
	if cfg.Backend == "logrus" {
		return logruslogger.NewLogger(cfg.Level)
	}
	return stdlogger.NewStandardLogger()
}

// newCache selects the cache backend from config, falling back to memory on
// backend startup failure so the service still comes up.
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	resultTTL := time.Duration(cfg.Cache.ResultTTL) * time.Second

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(resultTTL)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(resultTTL)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(resultTTL)
	}
}
