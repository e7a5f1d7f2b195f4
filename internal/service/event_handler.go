package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
	"github.com/ppopeskul/convoflow/internal/sanitize"
)

type eventHandler struct {
	repo       repository.Repository
	normalizer MessageNormalizer
	router     AutomationRouter
	logger     *zap.Logger
	opts       options
}

// NewEventHandler dispatches queue records by event kind.
func NewEventHandler(
	repo repository.Repository,
	normalizer MessageNormalizer,
	router AutomationRouter,
	logger *zap.Logger,
	opts ...Option,
) EventHandler {
	return &eventHandler{
		repo:       repo,
		normalizer: normalizer,
		router:     router,
		logger:     logger.With(zap.String("component", "event_handler")),
		opts:       buildOptions(opts),
	}
}

func (h *eventHandler) Handle(ctx context.Context, record *models.QueueRecord) error {
	var event models.GatewayEvent
	if err := json.Unmarshal(record.Payload, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	switch record.EventKind {
	case models.EventConnectionUpdate:
		return h.connectionUpdate(ctx, record, event.Data)
	case models.EventContactsUpsert, models.EventContactsUpdate:
		return h.syncContacts(ctx, record, event.Data)
	case models.EventMessagesUpsert:
		return h.messages(ctx, record, event.Data, true)
	case models.EventMessagesSet:
		return h.messages(ctx, record, event.Data, false)
	default:
		return fmt.Errorf("%w: unsupported event kind %q", ErrMalformedEvent, record.EventKind)
	}
}

func (h *eventHandler) connectionUpdate(ctx context.Context, record *models.QueueRecord, data json.RawMessage) error {
	var update struct {
		State  string `json:"state"`
		WUID   string `json:"wuid"`
		Sender string `json:"sender"`
	}
	if err := json.Unmarshal(data, &update); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if update.State == "" {
		return fmt.Errorf("%w: connection update without state", ErrMalformedEvent)
	}

	owner := update.WUID
	if owner == "" {
		owner = update.Sender
	}

	if err := h.repo.Connection().UpdateStatus(ctx, record.Instance, update.State, owner, h.opts.now()); err != nil {
		return fmt.Errorf("failed to update connection status: %w", err)
	}

	h.logger.Info("Connection status updated",
		zap.String("instance", record.Instance),
		zap.String("state", update.State),
	)
	return nil
}

type gatewayContact struct {
	ID        string `json:"id"`
	RemoteJID string `json:"remoteJid"`
	PushName  string `json:"pushName"`
	Name      string `json:"name"`
}

// syncContacts upserts every contact of the batch. One bad item does not stop
// the others; the batch still fails so the queue retries it, and the upserts
// make the retry a no-op for items that already succeeded.
func (h *eventHandler) syncContacts(ctx context.Context, record *models.QueueRecord, data json.RawMessage) error {
	items, err := splitItems(data, "contacts")
	if err != nil {
		return err
	}

	var (
		failed   int
		firstErr error
	)
	for _, raw := range items {
		if err := h.syncContact(ctx, record, raw); err != nil {
			if errors.Is(err, sanitize.ErrNotDirectChat) {
				continue
			}
			failed++
			if firstErr == nil {
				firstErr = err
			}
			h.logger.Warn("Failed to sync contact", zap.String("tenant_id", record.TenantID), zap.Error(err))
		}
	}

	if firstErr != nil {
		return fmt.Errorf("failed to sync %d of %d contacts: %w", failed, len(items), firstErr)
	}
	return nil
}

func (h *eventHandler) syncContact(ctx context.Context, record *models.QueueRecord, raw json.RawMessage) error {
	var c gatewayContact
	if err := json.Unmarshal(raw, &c); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	jid := c.RemoteJID
	if jid == "" {
		jid = c.ID
	}
	phone, err := sanitize.NormalizePhone(jid)
	if err != nil {
		return err
	}

	name := c.PushName
	if name == "" {
		name = c.Name
	}

	_, err = h.repo.Contact().Upsert(ctx, &models.Contact{
		TenantID: record.TenantID,
		Phone:    phone,
		Name:     sanitize.Truncate(name, 255),
		Instance: record.Instance,
	})
	return err
}

// messages persists every message of the event. Live upserts are routed to
// automation once; historical sets are stored only.
func (h *eventHandler) messages(ctx context.Context, record *models.QueueRecord, data json.RawMessage, live bool) error {
	items, err := splitItems(data, "messages")
	if err != nil {
		return err
	}

	var (
		failed   int
		firstErr error
	)
	for _, raw := range items {
		if err := h.message(ctx, record, raw, live); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			h.logger.Warn("Failed to handle message",
				zap.String("tenant_id", record.TenantID),
				zap.Int64("record_id", record.ID),
				zap.Error(err),
			)
		}
	}

	if firstErr != nil {
		return fmt.Errorf("failed to handle %d of %d messages: %w", failed, len(items), firstErr)
	}
	return nil
}

func (h *eventHandler) message(ctx context.Context, record *models.QueueRecord, raw json.RawMessage, live bool) error {
	in, err := h.normalizer.Normalize(ctx, record.TenantID, record.Instance, raw)
	if err != nil {
		return fmt.Errorf("failed to normalize message: %w", err)
	}
	if in == nil || !live || in.Message.Role != models.RoleUser {
		return nil
	}
	// A retried batch replays items that were already routed.
	if in.Message.RoutedAt.Valid {
		return nil
	}

	if err := h.router.Route(ctx, in); err != nil {
		return fmt.Errorf("failed to route message: %w", err)
	}

	if err := h.repo.Message().MarkRouted(context.WithoutCancel(ctx), in.Message.ID, h.opts.now()); err != nil {
		return fmt.Errorf("failed to mark message routed: %w", err)
	}
	return nil
}

// splitItems accepts a single object, a bare array, or an object wrapping the
// array under key.
func splitItems(data json.RawMessage, key string) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if wrapped, ok := obj[key]; ok {
		if err := json.Unmarshal(wrapped, &list); err == nil {
			return list, nil
		}
	}

	return []json.RawMessage{data}, nil
}
