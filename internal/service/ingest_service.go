package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/metrics"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
	"github.com/ppopeskul/convoflow/internal/sanitize"
)

type ingestService struct {
	cfg     *config.IngestConfig
	repo    repository.Repository
	tenants *cache.Cache
	logger  *zap.Logger
	opts    options
}

// NewIngestService accepts webhook bodies and turns them into queue records.
func NewIngestService(cfg *config.IngestConfig, repo repository.Repository, logger *zap.Logger, opts ...Option) IngestService {
	return &ingestService{
		cfg:     cfg,
		repo:    repo,
		tenants: cache.New(config.Seconds(cfg.CacheTTL), 2*config.Seconds(cfg.CacheTTL)),
		logger:  logger.With(zap.String("component", "ingest")),
		opts:    buildOptions(opts),
	}
}

// Ingest never fails: every outcome maps to a status token for the gateway.
func (s *ingestService) Ingest(ctx context.Context, body []byte) IngestStatus {
	status := s.ingest(ctx, body)
	metrics.IngestResults.WithLabelValues(string(status)).Inc()
	return status
}

func (s *ingestService) ingest(ctx context.Context, body []byte) IngestStatus {
	doc, err := sanitize.Decode(body, sanitize.Options{
		MaxDepth:     s.cfg.MaxDepth,
		MaxStringLen: s.cfg.MaxStringLen,
	})
	if err != nil {
		if errors.Is(err, sanitize.ErrNotObject) {
			s.logger.Warn("Rejected non-object webhook body")
			return IngestInvalidPayload
		}
		s.logger.Warn("Rejected malformed webhook body", zap.Error(err))
		return IngestInvalidJSON
	}

	event, _ := doc["event"].(string)
	instance, _ := doc["instance"].(string)
	if strings.TrimSpace(event) == "" || strings.TrimSpace(instance) == "" {
		s.logger.Warn("Webhook body without event or instance")
		return IngestInvalidPayload
	}

	kind := NormalizeEventKind(event)
	if !kind.Supported() {
		s.logger.Debug("Ignoring unsupported event", zap.String("event", event))
		return IngestIgnored
	}

	tenantID, err := s.resolveTenant(ctx, instance)
	if err != nil {
		s.logger.Error("Failed to resolve tenant",
			zap.String("instance", instance),
			zap.Error(err),
		)
		return IngestAcceptedWithError
	}
	if tenantID == "" {
		s.logger.Warn("Webhook from unknown instance", zap.String("instance", instance))
		return IngestIgnored
	}

	data := doc["data"]
	payload, err := json.Marshal(models.GatewayEvent{
		Event:    kind,
		Instance: instance,
		Data:     mustMarshal(data),
	})
	if err != nil {
		s.logger.Error("Failed to encode queue payload", zap.Error(err))
		return IngestAcceptedWithError
	}

	record := &models.QueueRecord{
		TenantID:       tenantID,
		GatewayEventID: EventID(kind, instance, data),
		EventKind:      kind,
		Instance:       instance,
		Payload:        payload,
		NextRetryAt:    s.opts.now(),
	}

	id, err := s.repo.Queue().Enqueue(ctx, record)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.logger.Debug("Duplicate webhook delivery",
				zap.String("tenant_id", tenantID),
				zap.String("gateway_event_id", record.GatewayEventID),
			)
			return IngestQueuedDuplicate
		}
		s.logger.Error("Failed to enqueue webhook",
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
		return IngestAcceptedWithError
	}

	s.logger.Info("Webhook queued",
		zap.Int64("record_id", id),
		zap.String("tenant_id", tenantID),
		zap.String("event_kind", string(kind)),
	)
	return IngestQueued
}

// resolveTenant returns "" for an instance with no connection row. Misses are
// cached for the shorter negative TTL.
func (s *ingestService) resolveTenant(ctx context.Context, instance string) (string, error) {
	if v, ok := s.tenants.Get(instance); ok {
		return v.(string), nil
	}

	conn, err := s.repo.Connection().GetByInstance(ctx, instance)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.tenants.Set(instance, "", config.Seconds(s.cfg.NegativeTTL))
			return "", nil
		}
		return "", err
	}

	s.tenants.Set(instance, conn.TenantID, cache.DefaultExpiration)
	return conn.TenantID, nil
}

// NormalizeEventKind maps gateway spellings such as "MESSAGES_UPSERT" to "messages.upsert".
func NormalizeEventKind(event string) models.EventKind {
	return models.EventKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(event)), "_", "."))
}

// EventID derives the idempotency key of a delivery. Message events carry
// their own id under data.key.id; everything else hashes the content.
func EventID(kind models.EventKind, instance string, data any) string {
	if obj, ok := data.(map[string]any); ok {
		if key, ok := obj["key"].(map[string]any); ok {
			if id, ok := key["id"].(string); ok && id != "" {
				return string(kind) + ":" + id
			}
		}
	}

	// encoding/json sorts map keys, so equal payloads hash equally.
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", kind, instance, mustMarshal(data))))
	return hex.EncodeToString(sum[:])
}

func mustMarshal(v any) json.RawMessage {
	if v == nil {
		return json.RawMessage("null")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}
