package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ppopeskul/convoflow/internal/models"
)

const messageColumns = `id, contact_id, tenant_id, role, content, kind, media_url, gateway_message_id, status,
	raw_payload, routed_at, created_at`

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Upsert stores the message keyed by (tenant_id, gateway_message_id). A replay
// converges content and metadata to the latest value; a stored media URL is
// never replaced by a null one. routed_at survives the replay.
func (r *messageRepository) Upsert(ctx context.Context, msg *models.Message) (*models.Message, error) {
	query := `
		INSERT INTO messages (contact_id, tenant_id, role, content, kind, media_url, gateway_message_id, status, raw_payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (tenant_id, gateway_message_id) DO UPDATE
		SET content = EXCLUDED.content,
		    kind = EXCLUDED.kind,
		    media_url = COALESCE(EXCLUDED.media_url, messages.media_url),
		    status = EXCLUDED.status,
		    raw_payload = EXCLUDED.raw_payload,
		    updated_at = NOW()
		RETURNING ` + messageColumns

	raw := msg.RawPayload
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}
	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var out models.Message
	err := r.db.GetContext(ctx, &out, query,
		msg.ContactID,
		msg.TenantID,
		msg.Role,
		msg.Content,
		msg.Kind,
		msg.MediaURL,
		msg.GatewayMessageID,
		msg.Status,
		string(raw),
		createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert message: %w", err)
	}

	return &out, nil
}

// MarkRouted records that the message reached automation. Only the first call
// sets the time.
func (r *messageRepository) MarkRouted(ctx context.Context, id int64, now time.Time) error {
	query := `UPDATE messages SET routed_at = $2, updated_at = NOW() WHERE id = $1 AND routed_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, id, now); err != nil {
		return fmt.Errorf("failed to mark message routed: %w", err)
	}

	return nil
}

// LastAssistantAt returns when automation last spoke to the contact.
func (r *messageRepository) LastAssistantAt(ctx context.Context, contactID int64) (time.Time, bool, error) {
	query := `SELECT MAX(created_at) FROM messages WHERE contact_id = $1 AND role = $2`

	var last sql.NullTime
	if err := r.db.GetContext(ctx, &last, query, contactID, models.RoleAssistant); err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get last assistant message: %w", err)
	}

	return last.Time, last.Valid, nil
}

// History returns the most recent messages in chronological order.
func (r *messageRepository) History(ctx context.Context, contactID int64, limit int) ([]*models.Message, error) {
	query := `
		SELECT * FROM (
			SELECT ` + messageColumns + `
			FROM messages
			WHERE contact_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC, id ASC
	`

	var messages []*models.Message
	if err := r.db.SelectContext(ctx, &messages, query, contactID, limit); err != nil {
		return nil, fmt.Errorf("failed to get message history: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) CountByContact(ctx context.Context, contactID int64) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM messages WHERE contact_id = $1`, contactID); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return count, nil
}
