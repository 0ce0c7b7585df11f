package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/skundu42/doom-backend/internal/config"
	workerHandler "github.com/skundu42/doom-backend/internal/handler/worker"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/stream"
	"github.com/skundu42/doom-backend/internal/task"
	videoSvc "github.com/skundu42/doom-backend/internal/usecase/video"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	streamClient := stream.NewClient(cfg.StreamAPIBase, cfg.StreamAccountID, cfg.StreamAPIToken)
	purgeSvc := videoSvc.NewVideoPurger(streamClient)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypePurgeVideo, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParsePurgeVideoPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.PurgeVideoHandler(ctx, p, purgeSvc)
	})

	runWorker(ctx, mux, cfg)
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	logger.Info(ctx, "✅  Worker gracefully stopped")
}
