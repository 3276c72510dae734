package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"gofolio/internal/api"
	"gofolio/internal/config"
	"gofolio/internal/session"
	"gofolio/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	conn := storage.NewConnManager(cfg.Mongo, logger)

	// connect in the background; the server starts immediately on
	// in-memory storage and switches over once the database is up
	go conn.Connect(context.Background())

	durable := storage.NewMongoStore(conn)
	volatile := storage.NewMemStore(cfg.Storage.SeedDemoData)
	store := storage.NewUnifiedStorage(durable, volatile, conn, logger)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("close redis client failed", slog.Any("error", err))
		}
	}()

	sessionCtx, cancelSession := context.WithTimeout(context.Background(), 3*time.Second)
	sessions := session.New(sessionCtx, redisClient, logger)
	cancelSession()

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, conn, store, sessions)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:    address,
		Handler: router,
	}

	go func() {
		logger.Info("api listening", slog.String("address", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start api server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := conn.Close(shutdownCtx); err != nil {
		logger.Error("close database connection failed", slog.Any("error", err))
	}
}
