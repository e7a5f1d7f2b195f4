package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs one task on a fixed interval. Ticks never overlap.
type Scheduler struct {
	name      string
	logger    *zap.Logger
	interval  time.Duration
	taskFunc  func(context.Context) error
	stopCh    chan struct{}
	doneCh    chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

func NewScheduler(name string, logger *zap.Logger, interval time.Duration, taskFunc func(context.Context) error) *Scheduler {
	return &Scheduler{
		name:     name,
		logger:   logger.With(zap.String("scheduler", name)),
		interval: interval,
		taskFunc: taskFunc,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Name() string {
	return s.name
}

// Start runs the task once immediately and then on every tick.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx, s.stopCh, s.doneCh)

	s.logger.Info("Scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop waits for an in-flight tick to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.isRunning = false
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh

	s.logger.Info("Scheduler stopped")
	return nil
}

func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Scheduler) run(ctx context.Context, stopCh <-chan struct{}, doneCh chan struct{}) {
	defer close(doneCh)
	defer func() {
		s.mu.Lock()
		// A later Start owns the flag once it has replaced doneCh.
		if s.doneCh == doneCh {
			s.isRunning = false
		}
		s.mu.Unlock()
	}()

	if err := s.executeTask(ctx); err != nil {
		s.logger.Error("Failed to execute initial task", zap.Error(err))
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler context canceled")
			return
		case <-stopCh:
			return
		case <-ticker.C:
			if err := s.executeTask(ctx); err != nil {
				s.logger.Error("Failed to execute scheduled task", zap.Error(err))
			}
		}
	}
}

// executeTask bounds one tick by the interval and turns a panic into an error.
func (s *Scheduler) executeTask(ctx context.Context) (err error) {
	timeout := s.interval - time.Second
	if timeout <= 0 {
		timeout = s.interval
	}
	taskCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	start := time.Now()
	err = s.taskFunc(taskCtx)
	s.logger.Debug("Task executed", zap.Duration("duration", time.Since(start)), zap.Error(err))
	return err
}
