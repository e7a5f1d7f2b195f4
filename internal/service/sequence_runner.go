package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
)

type sequenceRunner struct {
	cfg        *config.DispatcherConfig
	repo       repository.Repository
	settings   SettingsProvider
	dispatcher Dispatcher
	logger     *zap.Logger
	opts       options
}

// NewSequenceRunner sends multi-step outreach one step per tick, spaced by
// the dispatcher's jittered delay.
func NewSequenceRunner(
	cfg *config.DispatcherConfig,
	repo repository.Repository,
	settings SettingsProvider,
	dispatcher Dispatcher,
	logger *zap.Logger,
	opts ...Option,
) SequenceRunner {
	return &sequenceRunner{
		cfg:        cfg,
		repo:       repo,
		settings:   settings,
		dispatcher: dispatcher,
		logger:     logger.With(zap.String("component", "sequence")),
		opts:       buildOptions(opts),
	}
}

func (s *sequenceRunner) Start(ctx context.Context, contact *models.Contact, steps models.SequenceSteps) (*models.SequenceRun, error) {
	run, err := s.repo.Sequence().Create(ctx, &models.SequenceRun{
		TenantID:  contact.TenantID,
		ContactID: contact.ID,
		Instance:  contact.Instance,
		Phone:     contact.Phone,
		Steps:     steps,
		NextRunAt: s.opts.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start sequence: %w", err)
	}

	s.logger.Info("Sequence started",
		zap.Int64("run_id", run.ID),
		zap.Int64("contact_id", contact.ID),
		zap.Int("steps", len(steps)),
	)
	return run, nil
}

// RunDue sends the current step of every due run. Each step is claimed
// before it is sent, so concurrent replicas never send it twice, and progress
// is saved after each send so a crash never repeats a completed step. A run
// whose send failed stays leased until the claim expires.
func (s *sequenceRunner) RunDue(ctx context.Context) error {
	now := s.opts.now()
	runs, err := s.repo.Sequence().ListDue(ctx, now, s.cfg.SequenceBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list due sequences: %w", err)
	}

	lease := now.Add(time.Duration(max(s.cfg.SequenceLeaseSeconds, 1)) * time.Second)
	for _, listed := range runs {
		run, err := s.repo.Sequence().Claim(ctx, listed, now, lease)
		if errors.Is(err, repository.ErrConflict) {
			s.logger.Debug("Sequence step claimed elsewhere", zap.Int64("run_id", listed.ID), zap.Int("step", listed.CurrentStep))
			continue
		}
		if err != nil {
			s.logger.Error("Failed to claim sequence run", zap.Int64("run_id", listed.ID), zap.Error(err))
			continue
		}

		if err := s.runStep(ctx, run); err != nil {
			s.logger.Error("Failed to run sequence step",
				zap.Int64("run_id", run.ID),
				zap.Int("step", run.CurrentStep),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *sequenceRunner) runStep(ctx context.Context, run *models.SequenceRun) error {
	if run.Done() {
		run.Status = models.SequenceStatusCompleted
		return s.repo.Sequence().SaveProgress(ctx, run)
	}

	contact, err := s.repo.Contact().GetByID(ctx, run.ContactID)
	if err != nil {
		return fmt.Errorf("failed to load contact: %w", err)
	}
	settings, err := s.settings.Resolve(ctx, run.TenantID)
	if err != nil {
		return err
	}

	_, err = s.dispatcher.Send(ctx, OutboundText{
		Contact:  contact,
		Instance: run.Instance,
		Text:     renderTemplate(run.Steps[run.CurrentStep].Text, contact, ""),
		Settings: settings,
	})
	if errors.Is(err, ErrDailyCapReached) {
		run.NextRunAt = s.opts.now().Add(time.Duration(s.cfg.CapBackoffMinutes) * time.Minute)
		return s.repo.Sequence().SaveProgress(ctx, run)
	}
	if errors.Is(err, ErrSentNotRecorded) {
		s.logger.Warn("Sequence step sent but not recorded", zap.Int64("run_id", run.ID), zap.Error(err))
	} else if err != nil {
		return err
	}

	run.CurrentStep++
	if run.Done() {
		run.Status = models.SequenceStatusCompleted
	} else {
		run.NextRunAt = s.opts.now().Add(s.dispatcher.NextDelay(settings))
	}

	if err := s.repo.Sequence().SaveProgress(context.WithoutCancel(ctx), run); err != nil {
		return fmt.Errorf("failed to save sequence progress: %w", err)
	}
	return nil
}
