package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"turfadmin/config"
	auditRepo "turfadmin/database/repository/audit"
	"turfadmin/models"
	"turfadmin/services/tasks"

	"github.com/hibiken/asynq"
)

// InitAuditWorker runs the audit write worker in background.
func InitAuditWorker(repo auditRepo.AuditRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAuditRecord, handleAuditTask(repo))

	// Start async worker with retry logic
	go func() {
		log.Println("[AuditWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AuditWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AuditWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAuditTask(repo auditRepo.AuditRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var entry models.AuditEntry
		if err := json.Unmarshal(task.Payload(), &entry); err != nil {
			log.Printf("[AuditWorker] invalid payload: %v", err)
			return err
		}

		if err := repo.Insert(ctx, entry); err != nil {
			log.Printf("[AuditWorker] failed to persist audit entry %s: %v", entry.ID, err)
			return err
		}
		return nil
	}
}
