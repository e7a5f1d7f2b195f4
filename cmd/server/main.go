// Package main is the entry point for the convoflow HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/events"
	"github.com/ppopeskul/convoflow/internal/handler"
	"github.com/ppopeskul/convoflow/internal/infrastructure/migrate"
	"github.com/ppopeskul/convoflow/internal/lock"
	"github.com/ppopeskul/convoflow/internal/repository"
	"github.com/ppopeskul/convoflow/internal/service"
	"github.com/ppopeskul/convoflow/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		runner := migrate.NewRunner(&migrate.Config{
			DatabaseURL:    cfg.Database.GetURL(),
			MigrationsPath: cfg.Database.Migrations,
		}, logger)
		if err := runner.Up(0); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	var store service.ObjectStorage
	if cfg.Storage.Enabled {
		s3Store, err := storage.NewS3Store(&cfg.Storage, logger)
		if err != nil {
			logger.Fatal("Failed to initialize media storage", zap.Error(err))
		}
		store = s3Store
	}

	var publisher service.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := events.NewPublisher(&cfg.RabbitMQ, logger)
		if err != nil {
			logger.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer func() {
			if err := rabbit.Close(); err != nil {
				logger.Error("Failed to close RabbitMQ connection", zap.Error(err))
			}
		}()
		publisher = rabbit
	}

	repo := repository.NewRepository(db)
	locker := lock.NewLocker(redisClient, config.Seconds(cfg.Lock.TTLSeconds), logger)
	svc := service.NewService(cfg, repo, redisClient, locker, store, publisher, logger)

	h := handler.NewHandler(svc, &cfg.Ingest, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      setupRouter(h, cfg, logger),
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  60 * time.Second,
	}

	if cfg.Scheduler.AutoStart {
		if err := svc.Scheduler.Start(); err != nil {
			logger.Error("Failed to start schedulers on startup", zap.Error(err))
		} else {
			logger.Info("Schedulers started on application startup")
		}
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if svc.Scheduler.IsRunning() {
		if err := svc.Scheduler.Stop(); err != nil {
			logger.Error("Failed to stop schedulers", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
