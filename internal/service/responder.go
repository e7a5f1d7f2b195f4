package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/decision"
	"github.com/ppopeskul/convoflow/internal/metrics"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
)

const (
	TopicAIResponseSent   = "ai.response.sent"
	TopicAIResponseFailed = "ai.response.failed"
	TopicHandoffRequested = "handoff.requested"
)

type responder struct {
	cfg          *config.BufferConfig
	historyLimit int
	repo         repository.Repository
	locker       ContactLocker
	settings     SettingsProvider
	completion   CompletionClient
	gateway      ChatGateway
	dispatcher   Dispatcher
	logger       *zap.Logger
	opts         options
}

// NewResponder answers aggregated buffer turns with generated replies.
func NewResponder(
	cfg *config.BufferConfig,
	historyLimit int,
	repo repository.Repository,
	locker ContactLocker,
	settings SettingsProvider,
	completion CompletionClient,
	gateway ChatGateway,
	dispatcher Dispatcher,
	logger *zap.Logger,
	opts ...Option,
) Responder {
	return &responder{
		cfg:          cfg,
		historyLimit: historyLimit,
		repo:         repo,
		locker:       locker,
		settings:     settings,
		completion:   completion,
		gateway:      gateway,
		dispatcher:   dispatcher,
		logger:       logger.With(zap.String("component", "responder")),
		opts:         buildOptions(opts),
	}
}

// SweepBuffers claims every elapsed buffer and treats each as one user turn.
func (r *responder) SweepBuffers(ctx context.Context) error {
	buffers, err := r.repo.Buffer().ClaimReady(ctx, r.opts.now(), r.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to claim buffers: %w", err)
	}
	if len(buffers) == 0 {
		return nil
	}

	r.logger.Info("Claimed message buffers", zap.Int("count", len(buffers)))

	var g errgroup.Group
	g.SetLimit(max(r.cfg.Concurrency, 1))
	for _, buf := range buffers {
		g.Go(func() error {
			if err := r.respond(ctx, buf); err != nil {
				r.logger.Error("Failed to answer buffered turn",
					zap.String("tenant_id", buf.TenantID),
					zap.Int64("contact_id", buf.ContactID),
					zap.Error(err),
				)
			}
			return nil
		})
	}

	return g.Wait()
}

func (r *responder) respond(ctx context.Context, buf *models.MessageBuffer) error {
	err := withContactLock(ctx, r.locker, buf.ContactID, func(ctx context.Context) error {
		return r.respondLocked(ctx, buf)
	})
	if !errors.Is(err, ErrContactBusy) {
		return err
	}

	// Someone else holds the contact; put the turn back for the next sweep.
	if _, err := r.repo.Buffer().Requeue(ctx, buf, r.opts.now()); err != nil {
		return fmt.Errorf("failed to re-buffer turn: %w", err)
	}
	return nil
}

// retry puts a turn whose reply failed back into the buffer with exponential
// backoff. Once the attempts are spent the turn is published as failed.
func (r *responder) retry(ctx context.Context, buf *models.MessageBuffer, cause error) error {
	ctx = context.WithoutCancel(ctx)
	attempts := buf.Attempts + 1
	fields := []zap.Field{
		zap.String("tenant_id", buf.TenantID),
		zap.Int64("contact_id", buf.ContactID),
		zap.Int("attempts", attempts),
		zap.Error(cause),
	}

	if attempts >= max(r.cfg.MaxAttempts, 1) {
		metrics.ReplyFailures.WithLabelValues("abandoned").Inc()
		r.logger.Error("Reply failed, giving up on turn", fields...)
		return addOutbox(ctx, r.repo, buf.TenantID, TopicAIResponseFailed, map[string]any{
			"tenant_id":    buf.TenantID,
			"contact_id":   buf.ContactID,
			"user_message": buf.AggregatedContent,
			"attempts":     attempts,
			"error":        cause.Error(),
		})
	}

	turn := *buf
	turn.Attempts = attempts
	backoff := time.Duration(r.cfg.RetryBackoffSeconds) * time.Second << (attempts - 1)
	if _, err := r.repo.Buffer().Requeue(ctx, &turn, r.opts.now().Add(backoff)); err != nil {
		return fmt.Errorf("failed to re-buffer turn: %w", err)
	}

	metrics.ReplyFailures.WithLabelValues("requeued").Inc()
	r.logger.Warn("Reply failed, turn re-buffered", append(fields, zap.Duration("backoff", backoff))...)
	return nil
}

func (r *responder) respondLocked(ctx context.Context, buf *models.MessageBuffer) error {
	contact, err := r.repo.Contact().GetByID(ctx, buf.ContactID)
	if err != nil {
		return fmt.Errorf("failed to load contact: %w", err)
	}
	if contact.HandlingMode == models.HandlingModeManual {
		return nil
	}

	settings, err := r.settings.Resolve(ctx, contact.TenantID)
	if err != nil {
		return err
	}
	if !settings.AIEnabled {
		return nil
	}

	last, hasLast, err := r.repo.Message().LastAssistantAt(ctx, contact.ID)
	if err != nil {
		return err
	}

	result := decision.Decide(decision.Input{
		Contact:          contact,
		Text:             buf.AggregatedContent,
		Settings:         settings,
		Now:              r.opts.now(),
		LastAssistantAt:  last,
		HasLastAssistant: hasLast,
	})
	metrics.Decisions.WithLabelValues(reasonLabel(result.Reason)).Inc()

	fields := []zap.Field{
		zap.String("tenant_id", contact.TenantID),
		zap.Int64("contact_id", contact.ID),
		zap.String("reason", result.Reason),
	}
	r.logger.Info("Response decision", append(fields, zap.Bool("should_respond", result.ShouldRespond))...)

	if result.Reason == decision.ReasonUserRequestedHuman && contact.HandlingMode == models.HandlingModeAI {
		return r.handoff(ctx, contact, result.Reason)
	}
	if !result.ShouldRespond {
		return nil
	}

	reply, err := r.completion.Generate(ctx, CompletionRequest{
		SystemPrompt: settings.SystemPrompt,
		History:      r.history(ctx, contact),
		UserMessage:  buf.AggregatedContent,
	})
	if err != nil {
		return r.retry(ctx, buf, fmt.Errorf("failed to generate reply: %w", err))
	}

	msg, err := r.dispatcher.Send(ctx, OutboundText{
		Contact:  contact,
		Instance: contact.Instance,
		Text:     reply,
		Settings: settings,
	})
	if errors.Is(err, ErrSentNotRecorded) {
		return err
	}
	if err != nil {
		return r.retry(ctx, buf, err)
	}

	return addOutbox(ctx, r.repo, contact.TenantID, TopicAIResponseSent, map[string]any{
		"tenant_id":    contact.TenantID,
		"contact_id":   contact.ID,
		"message_id":   msg.ID,
		"user_message": buf.AggregatedContent,
		"reply":        reply,
	})
}

func (r *responder) handoff(ctx context.Context, contact *models.Contact, reason string) error {
	if err := r.repo.Contact().SetHandlingMode(ctx, contact.ID, models.HandlingModeHuman); err != nil {
		return fmt.Errorf("failed to hand off contact: %w", err)
	}
	contact.HandlingMode = models.HandlingModeHuman

	r.logger.Info("Contact handed off to a human",
		zap.String("tenant_id", contact.TenantID),
		zap.Int64("contact_id", contact.ID),
	)

	return addOutbox(ctx, r.repo, contact.TenantID, TopicHandoffRequested, map[string]any{
		"tenant_id":  contact.TenantID,
		"contact_id": contact.ID,
		"phone":      contact.Phone,
		"reason":     reason,
	})
}

// history returns prior turns without the trailing user turns, which are the
// ones being answered. With no stored history the gateway is asked instead.
func (r *responder) history(ctx context.Context, contact *models.Contact) []models.HistoryTurn {
	msgs, err := r.repo.Message().History(ctx, contact.ID, r.historyLimit)
	if err != nil {
		r.logger.Warn("Failed to load history", zap.Int64("contact_id", contact.ID), zap.Error(err))
		return nil
	}

	turns := make([]models.HistoryTurn, 0, len(msgs))
	for _, m := range msgs {
		turns = append(turns, models.HistoryTurn{Role: m.Role, Content: m.Content})
	}
	turns = trimTrailingUser(turns)
	if len(turns) > 0 {
		return turns
	}

	raw, err := r.gateway.FetchHistory(ctx, contact.Instance, contact.Phone, r.historyLimit)
	if err != nil {
		r.logger.Warn("Failed to backfill history", zap.Int64("contact_id", contact.ID), zap.Error(err))
		return nil
	}
	for _, item := range raw {
		if turn, ok := HistoryTurn(item); ok {
			turns = append(turns, turn)
		}
	}
	return trimTrailingUser(turns)
}

func trimTrailingUser(turns []models.HistoryTurn) []models.HistoryTurn {
	for len(turns) > 0 && turns[len(turns)-1].Role == models.RoleUser {
		turns = turns[:len(turns)-1]
	}
	return turns
}

// reasonLabel drops the elapsed seconds so the metric label set stays bounded.
func reasonLabel(reason string) string {
	if strings.HasPrefix(reason, "cooldown_active") {
		return "cooldown_active"
	}
	return reason
}

func addOutbox(ctx context.Context, repo repository.Repository, tenantID, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode outbox payload: %w", err)
	}

	if err := repo.Outbox().Add(ctx, &models.OutboxEvent{
		TenantID: tenantID,
		Topic:    topic,
		Payload:  body,
	}); err != nil {
		return fmt.Errorf("failed to add outbox event: %w", err)
	}
	return nil
}
