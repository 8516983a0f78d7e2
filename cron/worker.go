package cron

import (
	"context"
	"log"
	"time"

	"bookexpert/config"
	"bookexpert/services/reconciler"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeReconcileRun is the task type for a scheduled reconciliation pass.
const TypeReconcileRun = "reconcile:run"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReconcileWorker runs the async worker in background.
func InitReconcileWorker(rec *reconciler.Reconciler) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			// The pass scans the whole directory; never run two at once.
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReconcileRun, handleReconcileTask(rec))

	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReconcileTask(rec *reconciler.Reconciler) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		report, err := rec.Run(ctx)
		if err != nil {
			zap.L().Error("scheduled reconciliation failed", zap.Error(err))
			return err
		}
		zap.L().Info("scheduled reconciliation finished",
			zap.Int("slotsRepaired", report.SlotsRepaired),
			zap.Int("failures", report.Failures))
		return nil
	}
}

// EnqueueReconcile queues a reconciliation pass for the worker.
func EnqueueReconcile(ctx context.Context) error {
	client := asynq.NewClient(redisOpts())
	defer client.Close()

	// Repeated triggers collapse onto one queued run.
	_, err := client.EnqueueContext(ctx, asynq.NewTask(TypeReconcileRun, nil),
		asynq.Unique(time.Minute))
	return err
}
