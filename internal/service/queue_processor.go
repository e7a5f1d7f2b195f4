package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/metrics"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
)

const maxRetryDelay = 24 * time.Hour

type queueProcessor struct {
	cfg     *config.QueueConfig
	repo    repository.Repository
	handler EventHandler
	logger  *zap.Logger
	opts    options
}

func NewQueueProcessor(cfg *config.QueueConfig, repo repository.Repository, handler EventHandler, logger *zap.Logger, opts ...Option) QueueProcessor {
	return &queueProcessor{
		cfg:     cfg,
		repo:    repo,
		handler: handler,
		logger:  logger.With(zap.String("component", "queue")),
		opts:    buildOptions(opts),
	}
}

// RetryDelay is 2^attempts minutes, where attempts counts failures before this one.
func RetryDelay(attempts int) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	if attempts > 10 {
		return maxRetryDelay
	}
	d := time.Duration(1<<uint(attempts)) * time.Minute
	if d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}

// Process runs one attempt of the record's handler and records the outcome.
// Records that are not pending and due are skipped.
func (p *queueProcessor) Process(ctx context.Context, id int64) (ProcessOutcome, error) {
	record, err := p.repo.Queue().Claim(ctx, id, p.opts.now())
	if err != nil {
		if errors.Is(err, repository.ErrConflict) || errors.Is(err, repository.ErrNotFound) {
			return OutcomeSkipped, nil
		}
		return "", fmt.Errorf("failed to claim record: %w", err)
	}

	start := time.Now()
	handleErr := p.handler.Handle(ctx, record)
	metrics.QueueDuration.WithLabelValues(string(record.EventKind)).Observe(time.Since(start).Seconds())

	// The attempt already ran; its outcome must be recorded even if the caller went away.
	ctx = context.WithoutCancel(ctx)

	outcome, err := p.settle(ctx, record, handleErr)
	if err != nil {
		return "", err
	}

	metrics.QueueOutcomes.WithLabelValues(string(record.EventKind), string(outcome)).Inc()
	return outcome, nil
}

func (p *queueProcessor) settle(ctx context.Context, record *models.QueueRecord, handleErr error) (ProcessOutcome, error) {
	now := p.opts.now()

	if handleErr == nil {
		if err := p.repo.Queue().MarkCompleted(ctx, record.ID, now); err != nil {
			return "", fmt.Errorf("failed to complete record: %w", err)
		}
		p.logger.Debug("Queue record completed", zap.Int64("record_id", record.ID))
		return OutcomeOK, nil
	}

	entry := models.ErrorEntry{Error: handleErr.Error(), Time: now}
	attempts := record.Attempts + 1

	if attempts >= p.cfg.MaxAttempts {
		dl, err := p.repo.Queue().MarkDead(ctx, record.ID, attempts, entry)
		if err != nil {
			return "", fmt.Errorf("failed to dead-letter record: %w", err)
		}
		p.logger.Error("Queue record dead-lettered",
			zap.Int64("record_id", record.ID),
			zap.Int64("dead_letter_id", dl.ID),
			zap.String("tenant_id", record.TenantID),
			zap.Int("attempts", attempts),
			zap.Error(handleErr),
		)
		return OutcomeDeadLettered, nil
	}

	next := now.Add(RetryDelay(record.Attempts))
	if err := p.repo.Queue().ScheduleRetry(ctx, record.ID, attempts, next, entry); err != nil {
		return "", fmt.Errorf("failed to schedule retry: %w", err)
	}

	p.logger.Warn("Queue record failed, retry scheduled",
		zap.Int64("record_id", record.ID),
		zap.String("event_kind", string(record.EventKind)),
		zap.Int("attempts", attempts),
		zap.Time("next_retry_at", next),
		zap.Error(handleErr),
	)
	return OutcomeRetryScheduled, nil
}

// ProcessDue works through one batch of due records with bounded parallelism.
func (p *queueProcessor) ProcessDue(ctx context.Context) error {
	records, err := p.repo.Queue().ListDue(ctx, p.opts.now(), p.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list due records: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	p.logger.Info("Processing due queue records", zap.Int("count", len(records)))

	var g errgroup.Group
	g.SetLimit(max(p.cfg.Concurrency, 1))
	for _, rec := range records {
		id := rec.ID
		g.Go(func() error {
			if _, err := p.Process(ctx, id); err != nil {
				p.logger.Error("Failed to process queue record", zap.Int64("record_id", id), zap.Error(err))
			}
			return nil
		})
	}

	return g.Wait()
}

func (p *queueProcessor) ReapStale(ctx context.Context) error {
	now := p.opts.now()
	n, err := p.repo.Queue().ReapStale(ctx, now.Add(-config.Seconds(p.cfg.StaleAfterSeconds)), now)
	if err != nil {
		return fmt.Errorf("failed to reap stale records: %w", err)
	}
	if n > 0 {
		p.logger.Warn("Returned stale queue records to pending", zap.Int64("count", n))
	}
	return nil
}

func (p *queueProcessor) ListDeadLetters(ctx context.Context, page int, limit int) (*DeadLetterPage, error) {
	offset := (page - 1) * limit

	items, err := p.repo.DeadLetter().List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dead letters: %w", err)
	}

	totalCount, err := p.repo.DeadLetter().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	return &DeadLetterPage{
		Items:      items,
		Page:       page,
		Limit:      limit,
		TotalItems: int(totalCount),
		TotalPages: totalPages,
	}, nil
}

// Replay returns the dead letter's original record to pending with a fresh
// retry budget. The dead letter itself is kept unchanged.
func (p *queueProcessor) Replay(ctx context.Context, deadLetterID int64) (int64, error) {
	dl, err := p.repo.DeadLetter().GetByID(ctx, deadLetterID)
	if err != nil {
		return 0, fmt.Errorf("failed to get dead letter: %w", err)
	}

	if err := p.repo.Queue().Requeue(ctx, dl.OriginalRecordID, p.opts.now()); err != nil {
		return 0, fmt.Errorf("failed to requeue record: %w", err)
	}

	p.logger.Info("Dead letter replayed",
		zap.Int64("dead_letter_id", dl.ID),
		zap.Int64("record_id", dl.OriginalRecordID),
	)
	return dl.OriginalRecordID, nil
}
