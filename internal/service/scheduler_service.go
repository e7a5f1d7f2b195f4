package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/scheduler"
)

// SchedulerTasks are the periodic jobs driven by the scheduler service.
type SchedulerTasks struct {
	Queue     QueueProcessor
	Responder Responder
	Workflows WorkflowExecutor
	Sequences SequenceRunner
	Outbox    OutboxRelay
}

type schedulerService struct {
	schedulers []*scheduler.Scheduler
	logger     *zap.Logger
}

func NewSchedulerService(cfg *config.SchedulerConfig, tasks SchedulerTasks, logger *zap.Logger) SchedulerService {
	every := func(seconds int) time.Duration {
		if seconds <= 0 {
			seconds = 1
		}
		return config.Seconds(seconds)
	}

	return &schedulerService{
		schedulers: []*scheduler.Scheduler{
			scheduler.NewScheduler("queue", logger, every(cfg.QueueIntervalSeconds), tasks.Queue.ProcessDue),
			scheduler.NewScheduler("buffer", logger, every(cfg.BufferIntervalSeconds), tasks.Responder.SweepBuffers),
			scheduler.NewScheduler("resume", logger, every(cfg.ResumeIntervalSeconds), tasks.Workflows.ResumeDue),
			scheduler.NewScheduler("sequence", logger, every(cfg.SequenceIntervalSeconds), tasks.Sequences.RunDue),
			scheduler.NewScheduler("outbox", logger, every(cfg.OutboxIntervalSeconds), tasks.Outbox.RelayPending),
			scheduler.NewScheduler("reaper", logger, every(cfg.ReaperIntervalSeconds), tasks.Queue.ReapStale),
		},
		logger: logger,
	}
}

// Start starts every scheduler. If one fails the others are stopped again.
func (s *schedulerService) Start() error {
	if s.IsRunning() {
		return scheduler.ErrSchedulerAlreadyRunning
	}

	ctx := context.Background()
	for i, sch := range s.schedulers {
		if err := sch.Start(ctx); err != nil {
			for _, started := range s.schedulers[:i] {
				_ = started.Stop()
			}
			return fmt.Errorf("failed to start %s scheduler: %w", sch.Name(), err)
		}
	}

	s.logger.Info("All schedulers started", zap.Int("count", len(s.schedulers)))
	return nil
}

func (s *schedulerService) Stop() error {
	if !s.IsRunning() {
		return scheduler.ErrSchedulerNotRunning
	}

	for _, sch := range s.schedulers {
		if err := sch.Stop(); err != nil && !errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			return fmt.Errorf("failed to stop %s scheduler: %w", sch.Name(), err)
		}
	}

	s.logger.Info("All schedulers stopped")
	return nil
}

// IsRunning reports whether any scheduler is running.
func (s *schedulerService) IsRunning() bool {
	for _, sch := range s.schedulers {
		if sch.IsRunning() {
			return true
		}
	}
	return false
}

func (s *schedulerService) Statuses() map[string]bool {
	out := make(map[string]bool, len(s.schedulers))
	for _, sch := range s.schedulers {
		out[sch.Name()] = sch.IsRunning()
	}
	return out
}
