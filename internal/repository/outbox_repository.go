package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ppopeskul/convoflow/internal/models"
)

const outboxColumns = `id, tenant_id, topic, payload, status, retry_count, next_retry_at, created_at, updated_at`

type outboxRepository struct {
	db *sqlx.DB
}

func NewOutboxRepository(db *sqlx.DB) OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

func (r *outboxRepository) Add(ctx context.Context, event *models.OutboxEvent) error {
	query := `
		INSERT INTO outbox_events (tenant_id, topic, payload, status, retry_count, next_retry_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, NOW(), NOW(), NOW())
	`

	if _, err := r.db.ExecContext(ctx, query, event.TenantID, event.Topic, string(event.Payload), models.OutboxStatusPending); err != nil {
		return fmt.Errorf("failed to add outbox event: %w", err)
	}

	return nil
}

func (r *outboxRepository) ListPending(ctx context.Context, now time.Time, limit int) ([]*models.OutboxEvent, error) {
	query := `
		SELECT ` + outboxColumns + `
		FROM outbox_events
		WHERE status = $1 AND next_retry_at <= $2
		ORDER BY id ASC
		LIMIT $3
	`

	var events []*models.OutboxEvent
	if err := r.db.SelectContext(ctx, &events, query, models.OutboxStatusPending, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list pending outbox events: %w", err)
	}

	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id int64, now time.Time) error {
	query := `UPDATE outbox_events SET status = $2, updated_at = $3 WHERE id = $1 AND status = $4`

	res, err := r.db.ExecContext(ctx, query, id, models.OutboxStatusSent, now, models.OutboxStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark outbox event sent: %w", err)
	}

	return expectOne(res)
}

func (r *outboxRepository) MarkRetry(ctx context.Context, id int64, retryCount int, nextRetryAt time.Time, status models.OutboxStatus) error {
	query := `
		UPDATE outbox_events
		SET retry_count = $2, next_retry_at = $3, status = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
	`

	res, err := r.db.ExecContext(ctx, query, id, retryCount, nextRetryAt, status, models.OutboxStatusPending)
	if err != nil {
		return fmt.Errorf("failed to reschedule outbox event: %w", err)
	}

	return expectOne(res)
}
