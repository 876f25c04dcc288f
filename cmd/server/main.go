package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/config"
	handler "github.com/Infanjebasurya/Hiring-form-sub001/internal/delivery/http"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/domain"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/publisher"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/store"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("Starting hiring tracker server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()

	// Open the document store
	docs, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open record store", zap.Error(err))
	}
	defer docs.Close()

	// Initialize change-event publisher
	var pub publisher.Publisher = publisher.NoopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		pub, err = publisher.NewRabbitMQPublisher(cfg.RabbitMQ.URL, logger)
		if err != nil {
			logger.Fatal("Failed to initialize RabbitMQ publisher", zap.Error(err))
		}
		logger.Info("Connected to RabbitMQ")
	}
	defer pub.Close()

	// Initialize collections and services
	jobCol := store.NewCollection[domain.Job](store.JobCollection, docs, logger)
	candCol := store.NewCollection[domain.Candidate](store.CandidateCollection, docs, logger)

	candidates := usecase.NewCandidateService(candCol, pub, logger, cfg.Lifecycle.Strict)
	jobs := usecase.NewJobService(jobCol, pub, logger, cfg.Lifecycle.Strict)

	// Initialize router
	router := handler.NewRouter(&handler.RouterDeps{
		Candidates:      candidates,
		Jobs:            jobs,
		Logger:          logger,
		RateLimitPerMin: cfg.Server.RateLimit,
		StoreDriver:     cfg.Store.Driver,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server listening", zap.Int("port", cfg.Server.Port), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}

// openStore builds the configured document store backend.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.DocumentStore, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		logger.Warn("Using in-memory store, records will not survive a restart")
		return store.NewMemoryStore(), nil

	case config.DriverRedis:
		opts, err := redis.ParseURL(cfg.Store.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		logger.Info("Connected to Redis")
		return store.NewRedisStore(client), nil

	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		logger.Info("Connected to PostgreSQL")
		return store.NewPostgresStore(ctx, pool)
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
