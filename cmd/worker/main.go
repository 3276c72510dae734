package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"gofolio/internal/config"
	"gofolio/internal/metrics"
	"gofolio/internal/storage"
	"gofolio/internal/tasks"
	"gofolio/internal/worker"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	conn := storage.NewConnManager(cfg.Mongo, logger)
	conn.Connect(context.Background())

	durable := storage.NewMongoStore(conn)
	volatile := storage.NewMemStore(cfg.Storage.SeedDemoData)
	store := storage.NewUnifiedStorage(durable, volatile, conn, logger)

	redisAddr := cfg.Redis.Addr()
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("close redis client failed", slog.Any("error", err))
		}
	}()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("ping redis: %v", err)
	}

	redisOpt := asynq.RedisClientOpt{Addr: redisAddr}

	client := asynq.NewClient(redisOpt)
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("close asynq client failed", slog.Any("error", err))
		}
	}()

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Worker.Concurrency,
	})

	syncHandler := worker.NewSocialSyncHandler(store, client, logger)

	mux := asynq.NewServeMux()
	mux.Use(metrics.AsynqMetricsMiddleware())
	mux.HandleFunc(tasks.TypeSocialSyncAll, syncHandler.HandleSyncAll)
	mux.HandleFunc(tasks.TypeSocialSync, syncHandler.HandleSync)

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register(cfg.Worker.SyncSchedule, tasks.NewSocialSyncAllTask()); err != nil {
		log.Fatalf("register sync schedule: %v", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("scheduler stopped", slog.Any("error", err))
		}
	}()

	logger.Info("worker service started",
		slog.String("redis_addr", redisAddr),
		slog.String("sync_schedule", cfg.Worker.SyncSchedule),
	)
	if err := server.Run(mux); err != nil {
		logger.Error("worker server stopped", slog.Any("error", err))
	}
}
