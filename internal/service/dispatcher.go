package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/metrics"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
)

type dispatcher struct {
	repo     repository.Repository
	gateway  ChatGateway
	counter  SendCounter
	settings SettingsProvider
	logger   *zap.Logger
	opts     options
}

// NewDispatcher sends automated replies under the tenant's daily cap and
// records them as assistant messages.
func NewDispatcher(
	repo repository.Repository,
	gateway ChatGateway,
	counter SendCounter,
	settings SettingsProvider,
	logger *zap.Logger,
	opts ...Option,
) Dispatcher {
	return &dispatcher{
		repo:     repo,
		gateway:  gateway,
		counter:  counter,
		settings: settings,
		logger:   logger.With(zap.String("component", "dispatcher")),
		opts:     buildOptions(opts),
	}
}

func (d *dispatcher) Send(ctx context.Context, out OutboundText) (*models.Message, error) {
	contact := out.Contact
	settings := out.Settings
	if settings == nil {
		var err error
		if settings, err = d.settings.Resolve(ctx, contact.TenantID); err != nil {
			return nil, err
		}
	}

	instance := out.Instance
	if instance == "" {
		instance = contact.Instance
	}

	now := d.opts.now()
	day := now.In(settings.Location())

	if err := d.counter.Reserve(ctx, contact.TenantID, settings.DailySendCap, day); err != nil {
		if errors.Is(err, ErrDailyCapReached) {
			metrics.OutboundSends.WithLabelValues("cap_reached").Inc()
			d.logger.Warn("Daily send cap reached",
				zap.String("tenant_id", contact.TenantID),
				zap.Int("cap", settings.DailySendCap),
			)
		}
		return nil, err
	}

	gatewayID, err := d.gateway.SendText(ctx, instance, contact.Phone, out.Text)
	if err != nil {
		metrics.OutboundSends.WithLabelValues("failed").Inc()
		if relErr := d.counter.Release(context.WithoutCancel(ctx), contact.TenantID, day); relErr != nil {
			d.logger.Warn("Failed to release send slot", zap.Error(relErr))
		}
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	if gatewayID == "" {
		gatewayID = "out-" + uuid.NewString()
	}

	// The message left the gateway; persistence must not be skipped on cancellation.
	ctx = context.WithoutCancel(ctx)

	msg, err := d.repo.Message().Upsert(ctx, &models.Message{
		ContactID:        contact.ID,
		TenantID:         contact.TenantID,
		Role:             models.RoleAssistant,
		Content:          out.Text,
		Kind:             models.KindText,
		GatewayMessageID: gatewayID,
		Status:           models.MessageStatusSent,
		CreatedAt:        now,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSentNotRecorded, err)
	}

	if err := d.repo.Conversation().Touch(ctx, contact.TenantID, contact.ID, out.Text, now, false); err != nil {
		d.logger.Warn("Failed to touch conversation", zap.Int64("contact_id", contact.ID), zap.Error(err))
	}

	metrics.OutboundSends.WithLabelValues("sent").Inc()
	d.logger.Info("Message sent",
		zap.String("tenant_id", contact.TenantID),
		zap.Int64("contact_id", contact.ID),
		zap.String("gateway_message_id", gatewayID),
	)
	return msg, nil
}

// NextDelay is base + rand[0, jitter], never below the minimum.
func (d *dispatcher) NextDelay(settings *models.TenantSettings) time.Duration {
	delay := int64(settings.BaseDelayMs)
	if settings.JitterMs > 0 {
		delay += d.opts.random(int64(settings.JitterMs) + 1)
	}
	if delay < int64(settings.MinDelayMs) {
		delay = int64(settings.MinDelayMs)
	}
	return time.Duration(delay) * time.Millisecond
}
