package tasks

import (
	"context"

	"github.com/darkr4m/actually-star-k9/core/config"
	"github.com/darkr4m/actually-star-k9/core/logger"

	"github.com/hibiken/asynq"
)

const TypeCleanupOAuthStates = "oauth:cleanup_states"

// StateCleaner removes expired anti-forgery state rows.
type StateCleaner interface {
	CleanupExpiredOAuthStates(ctx context.Context) error
}

// Runner hosts the background maintenance tasks. Request handling never
// depends on it; losing Redis only pauses housekeeping.
type Runner struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
}

func NewRunner(cfg config.RedisConfig, cleaner StateCleaner) *Runner {
	if cfg.Addr == "" {
		return nil
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 1})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCleanupOAuthStates, func(ctx context.Context, t *asynq.Task) error {
		if err := cleaner.CleanupExpiredOAuthStates(ctx); err != nil {
			logger.Error("Tasks:CleanupOAuthStates:Error", "error", err)
			return err
		}
		logger.Info("Tasks:CleanupOAuthStates:Success")
		return nil
	})

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeCleanupOAuthStates, nil)); err != nil {
		logger.Error("Tasks:Register:Error", "error", err)
		return nil
	}

	r := &Runner{server: server, scheduler: scheduler}
	go func() {
		if err := server.Run(mux); err != nil {
			logger.Error("Tasks:Server:Error", "error", err)
		}
	}()
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("Tasks:Scheduler:Error", "error", err)
		}
	}()
	logger.Info("Tasks:Init:Success")
	return r
}

func (r *Runner) Shutdown() {
	if r == nil {
		return
	}
	r.scheduler.Shutdown()
	r.server.Shutdown()
}
