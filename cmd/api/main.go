// ABOUTME: Main entry point for the Clipper API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clipper-app-api/api"
	"clipper-app-api/api/handlers"
	"clipper-app-api/api/middleware"
	"clipper-app-api/core/clip"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/core/router"
	"clipper-app-api/core/screen"
	"clipper-app-api/core/search"
	"clipper-app-api/core/theme"
	memorycache "clipper-app-api/infrastructure/cache/memory"
	rediscache "clipper-app-api/infrastructure/cache/redis"
	stdhttp "clipper-app-api/infrastructure/http/standard"
	"clipper-app-api/infrastructure/logger"
	logruslogger "clipper-app-api/infrastructure/logger/logrus"
	zaplogger "clipper-app-api/infrastructure/logger/zap"
	memorystore "clipper-app-api/infrastructure/storage/memory"
	redisstore "clipper-app-api/infrastructure/storage/redis"
	sqlitestore "clipper-app-api/infrastructure/storage/sqlite"
	"clipper-app-api/pkg/config"
	"clipper-app-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger, syncLogger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer syncLogger()

	flags := featureflags.NewEnvManagerWithDefaults("FEATURE_", featureflags.Defaults)
	appLogger.Info("Starting Clipper API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"cache_type":   cfg.Cache.Type,
		"storage_type": cfg.Storage.Type,
		"log_backend":  cfg.Log.Backend,
	})
	for flag, enabled := range flags.GetAllFlags() {
		appLogger.Info("Feature flag", map[string]interface{}{
			"flag":    string(flag),
			"enabled": enabled,
		})
	}

	cache, closeCache := newCache(cfg.Cache, appLogger)
	defer closeCache()

	storage, closeStorage, err := newStorage(cfg.Storage, appLogger)
	if err != nil {
		appLogger.Error("Failed to open clip storage", map[string]interface{}{
			"storage_type": cfg.Storage.Type,
			"error":        err.Error(),
		})
		log.Fatalf("Failed to open clip storage: %v", err)
	}
	defer closeStorage()

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: stdhttp.NewStandardHTTPClient(30 * time.Second),
		Logger:     appLogger,
	}

	searchService := search.NewSearchService(deps, search.Options{
		ProviderURL: cfg.Search.ProviderURL,
		CacheTTL:    cfg.Search.CacheTTL,
	})
	clipService := clip.NewClipService(storage, appLogger)
	themeService := theme.NewThemeService(storage, appLogger)

	routes := router.Production(
		screen.NewMainScreen(clipService, themeService),
		screen.NewSearchArticleScreen(searchService, clipService, themeService),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	humaAPI, mux := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:  appLogger,
		Flags:   flags,
		Limiter: limiter,
	})

	handlers.NewSearchHandler(searchService, clipService).RegisterRoutes(humaAPI)
	handlers.NewClipHandler(clipService).RegisterRoutes(humaAPI)
	handlers.NewConstantsHandler().RegisterRoutes(humaAPI)
	handlers.NewNavigationHandler(routes).RegisterRoutes(humaAPI)
	handlers.NewThemeHandler(themeService).RegisterRoutes(humaAPI)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go pruneLimiter(ctx, limiter, cfg.RateLimit.Window, appLogger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	appLogger.Info("Server stopped", nil)
}

// newLogger builds the configured logger backend and returns a flush func
func newLogger(cfg config.LogConfig) (interfaces.Logger, func(), error) {
	out := logger.Output(cfg.File)
	closeOut := func() {
		if c, ok := out.(io.Closer); ok {
			c.Close()
		}
	}

	switch cfg.Backend {
	case "logrus":
		l, err := logruslogger.New(out, cfg.Level)
		if err != nil {
			return nil, nil, err
		}
		return l, closeOut, nil
	default:
		l, err := zaplogger.New(out, cfg.Level)
		if err != nil {
			return nil, nil, err
		}
		return l, func() {
			_ = l.Sync()
			closeOut()
		}, nil
	}
}

// newCache returns the configured cache, falling back to memory when Redis is unreachable
func newCache(cfg config.CacheConfig, appLogger interfaces.Logger) (interfaces.Cache, func()) {
	if cfg.Type == "redis" {
		redisCache, err := rediscache.NewRedisCache(cfg.Redis)
		if err == nil {
			appLogger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Redis.Address,
			})
			return redisCache, func() { redisCache.Close() }
		}
		appLogger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	appLogger.Info("Using memory cache", map[string]interface{}{
		"cleanup_interval": cfg.Memory.CleanupInterval.String(),
	})
	return memorycache.NewMemoryCache(cfg.Memory.CleanupInterval), func() {}
}

// newStorage opens the configured clip and theme storage backend
func newStorage(cfg config.StorageConfig, appLogger interfaces.Logger) (interfaces.Storage, func(), error) {
	switch cfg.Type {
	case "sqlite":
		store, err := sqlitestore.NewClipStoreWithLogger(cfg.SQLitePath, appLogger)
		if err != nil {
			return nil, nil, err
		}
		appLogger.Info("Using SQLite clip storage", map[string]interface{}{
			"path": cfg.SQLitePath,
		})
		return store, func() { store.Close() }, nil
	case "redis":
		client, err := rediscache.NewClient(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		appLogger.Info("Using Redis clip storage", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		store := redisstore.NewClipStore(client)
		return store, func() { store.Close() }, nil
	default:
		appLogger.Warn("Using memory clip storage, clips and themes are lost on restart", nil)
		return memorystore.NewClipStore(), func() {}, nil
	}
}

// pruneLimiter drops idle rate limit entries once per window
func pruneLimiter(ctx context.Context, limiter *middleware.RateLimiter, window time.Duration, appLogger interfaces.Logger) {
	ticker := time.NewTicker(window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := limiter.Prune(); removed > 0 {
				appLogger.Debug("Pruned idle rate limit entries", map[string]interface{}{
					"removed": removed,
				})
			}
		}
	}
}
