package main

import (
	"context"                              // context package is needed for Redis operations
	"errors"                               // Server shutdown detection
	"fragrance_finder/internal/api"        // Custom package for API handlers
	"fragrance_finder/internal/config"     // Custom package for configuration
	"fragrance_finder/internal/db"         // Custom package for the database pool
	"fragrance_finder/internal/repository" // Custom package for persistence
	"fragrance_finder/internal/service"    // Custom package for application logic
	"fragrance_finder/internal/utils"      // Tokens and cache
	"net/http"                             // HTTP server
	"os"                                   // Signals
	"os/signal"                            // Graceful shutdown
	"syscall"                              // SIGTERM
	"time"                                 // Shutdown timeout

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	config.SetupLogger(cfg)    // Setup logger
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to the database once; the pool is shared by every repository
	gdb, err := db.Open(cfg.DSN(), db.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,    // Pool size
		MaxIdleConns:    cfg.DBMaxIdleConns,    // Idle connections
		ConnMaxLifetime: cfg.DBConnMaxLifetime, // Connection lifetime
	})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client when configured; without it responses are not cached
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logrus.Info("REDIS_ADDR not set, response caching disabled")
	}
	cache := utils.NewCache(redisClient)

	tokens := utils.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.JWTExpiresIn)
	catalog := service.NewCatalogService(repository.NewFragranceRepository(gdb), cache)
	auth := service.NewAuthService(repository.NewUserRepository(gdb), tokens)
	wishlist := service.NewWishlistService(repository.NewWishlistRepository(gdb), catalog)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{
		Auth:           auth,
		Wishlist:       wishlist,
		Catalog:        catalog,
		Tokens:         tokens,
		Cache:          cache,
		Cookies:        api.CookieSettings{MaxAge: tokens.TTL(), Secure: cfg.CookieSecure},
		RequestTimeout: cfg.RequestTimeout,
	})
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{Addr: ":" + cfg.AppPort, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logrus.WithField("port", cfg.AppPort).Info("Server running") // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}
