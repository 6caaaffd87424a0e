package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zatch-server/internal/config"
	"zatch-server/internal/jobs"
	"zatch-server/internal/jobs/scheduler"
	schedulerJobs "zatch-server/internal/jobs/scheduler/jobs"
	"zatch-server/internal/jobs/workers"
	"zatch-server/internal/observability"
	"zatch-server/internal/store"

	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := observability.NewLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting background worker server...")

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize store", err)
	}

	jobClient := jobs.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	defer jobClient.Close()

	shareWorker := workers.NewShareWorker(&dataStore, logger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				jobs.QueueDefault: 10,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeShareReconcile, shareWorker.ProcessShareReconcileTask)

	// Scheduler sweeps for orphaned share rows hourly and feeds them to the
	// reconciliation queue.
	sched := scheduler.New(logger)
	sched.Register(schedulerJobs.NewOrphanShareScanJob(&dataStore, jobClient, logger, time.Hour))
	go func() {
		if err := sched.Start(ctx); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "scheduler stopped with error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr))
		if err := srv.Run(mux); err != nil {
			logger.Fatal(ctx, "failed to run worker server", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")
	cancel()
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}
