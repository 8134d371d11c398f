package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"portfolio-backend/internal/shared"
	"portfolio-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress, redisPassword string, redisDB int) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     redisAddress,
			Password: redisPassword,
			DB:       redisDB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterJobs() error {
	return s.registerDailyContactSummaryJob()
}

// ================================================
// JOB: Daily Contact Summary (Daily at 7 AM)
// ================================================
// Morning time - owner đọc summary trước khi bắt đầu ngày làm việc
func (s *Scheduler) registerDailyContactSummaryJob() error {
	payload, err := json.Marshal(shared.DailyContactSummaryPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeDailyContactSummary, payload)

	_, err = s.scheduler.Register(
		"0 7 * * *", // Daily at 7 AM
		task,
		asynq.Queue(shared.QueueMail),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register DailyContactSummary job", err)
		return err
	}

	logger.Info("✓ Registered DailyContactSummary: daily at 7 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
