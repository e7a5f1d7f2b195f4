package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/metrics"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
)

type outboxRelay struct {
	cfg       *config.OutboxConfig
	repo      repository.Repository
	publisher EventPublisher
	logger    *zap.Logger
	opts      options
}

// NewOutboxRelay publishes pending outbox events. With a nil publisher events
// stay pending until a broker is configured.
func NewOutboxRelay(cfg *config.OutboxConfig, repo repository.Repository, publisher EventPublisher, logger *zap.Logger, opts ...Option) OutboxRelay {
	return &outboxRelay{
		cfg:       cfg,
		repo:      repo,
		publisher: publisher,
		logger:    logger.With(zap.String("component", "outbox")),
		opts:      buildOptions(opts),
	}
}

func (o *outboxRelay) RelayPending(ctx context.Context) error {
	if o.publisher == nil {
		return nil
	}

	events, err := o.repo.Outbox().ListPending(ctx, o.opts.now(), o.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list outbox events: %w", err)
	}

	for _, ev := range events {
		if err := o.relay(ctx, ev); err != nil {
			o.logger.Error("Failed to relay outbox event", zap.Int64("event_id", ev.ID), zap.Error(err))
		}
	}
	return nil
}

func (o *outboxRelay) relay(ctx context.Context, ev *models.OutboxEvent) error {
	pubErr := o.publisher.Publish(ctx, ev.Topic, ev.Payload)
	if pubErr == nil {
		metrics.OutboxRelays.WithLabelValues("sent").Inc()
		return o.repo.Outbox().MarkSent(ctx, ev.ID, o.opts.now())
	}

	retries := ev.RetryCount + 1
	status := models.OutboxStatusPending
	if retries >= o.cfg.MaxRetries {
		status = models.OutboxStatusFailed
		metrics.OutboxRelays.WithLabelValues("failed").Inc()
	} else {
		metrics.OutboxRelays.WithLabelValues("retry").Inc()
	}

	next := o.opts.now().Add(time.Duration(retries*retries) * time.Second)
	if err := o.repo.Outbox().MarkRetry(ctx, ev.ID, retries, next, status); err != nil {
		return fmt.Errorf("failed to reschedule outbox event: %w", err)
	}

	o.logger.Warn("Outbox publish failed",
		zap.Int64("event_id", ev.ID),
		zap.String("topic", ev.Topic),
		zap.Int("retry_count", retries),
		zap.String("status", string(status)),
		zap.Error(pubErr),
	)
	return nil
}
