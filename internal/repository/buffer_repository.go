package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ppopeskul/convoflow/internal/models"
)

const bufferColumns = `contact_id, tenant_id, aggregated_content, trigger_at, attempts, created_at`

type bufferRepository struct {
	db *sqlx.DB
}

func NewBufferRepository(db *sqlx.DB) BufferRepository {
	return &bufferRepository{
		db: db,
	}
}

// Append adds text to the contact's live buffer, creating it if needed, and
// moves trigger_at to the given time. The contact's ai_response_due_at mirrors it.
func (r *bufferRepository) Append(ctx context.Context, tenantID string, contactID int64, text string, triggerAt time.Time) (*models.MessageBuffer, error) {
	query := `
		WITH buf AS (
			INSERT INTO message_buffers (contact_id, tenant_id, aggregated_content, trigger_at, created_at)
			VALUES ($1, $2, $3, $4, NOW())
			ON CONFLICT (contact_id) DO UPDATE
			SET aggregated_content = message_buffers.aggregated_content || E'\n' || EXCLUDED.aggregated_content,
			    trigger_at = EXCLUDED.trigger_at
			RETURNING ` + bufferColumns + `
		), due AS (
			UPDATE contacts SET ai_response_due_at = $4 WHERE id = $1
		)
		SELECT ` + bufferColumns + ` FROM buf
	`

	var buf models.MessageBuffer
	if err := r.db.GetContext(ctx, &buf, query, contactID, tenantID, text, triggerAt); err != nil {
		return nil, fmt.Errorf("failed to append to buffer: %w", err)
	}

	return &buf, nil
}

// Requeue puts a claimed turn back. Its text goes in front of anything that
// arrived since the claim, and a live buffer keeps its own trigger time so the
// newer burst is still debounced. The attempt count is carried over.
func (r *bufferRepository) Requeue(ctx context.Context, buf *models.MessageBuffer, triggerAt time.Time) (*models.MessageBuffer, error) {
	query := `
		WITH buf AS (
			INSERT INTO message_buffers (contact_id, tenant_id, aggregated_content, trigger_at, attempts, created_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			ON CONFLICT (contact_id) DO UPDATE
			SET aggregated_content = EXCLUDED.aggregated_content || E'\n' || message_buffers.aggregated_content,
			    attempts = GREATEST(message_buffers.attempts, EXCLUDED.attempts)
			RETURNING ` + bufferColumns + `
		), due AS (
			UPDATE contacts SET ai_response_due_at = (SELECT trigger_at FROM buf) WHERE id = $1
		)
		SELECT ` + bufferColumns + ` FROM buf
	`

	var out models.MessageBuffer
	err := r.db.GetContext(ctx, &out, query, buf.ContactID, buf.TenantID, buf.AggregatedContent, triggerAt, buf.Attempts)
	if err != nil {
		return nil, fmt.Errorf("failed to requeue buffer: %w", err)
	}

	return &out, nil
}

// ClaimReady deletes and returns every buffer whose trigger time has passed.
// Rows locked by a concurrent sweep are skipped, so no buffer is claimed twice.
func (r *bufferRepository) ClaimReady(ctx context.Context, now time.Time, limit int) ([]*models.MessageBuffer, error) {
	query := `
		WITH claimed AS (
			DELETE FROM message_buffers
			WHERE contact_id IN (
				SELECT contact_id
				FROM message_buffers
				WHERE trigger_at <= $1
				ORDER BY trigger_at ASC
				LIMIT $2
				FOR UPDATE SKIP LOCKED
			)
			RETURNING ` + bufferColumns + `
		), cleared AS (
			UPDATE contacts c
			SET ai_response_due_at = NULL
			FROM claimed
			WHERE c.id = claimed.contact_id AND c.ai_response_due_at <= $1
		)
		SELECT ` + bufferColumns + ` FROM claimed
	`

	var buffers []*models.MessageBuffer
	if err := r.db.SelectContext(ctx, &buffers, query, now, limit); err != nil {
		return nil, fmt.Errorf("failed to claim ready buffers: %w", err)
	}

	return buffers, nil
}
