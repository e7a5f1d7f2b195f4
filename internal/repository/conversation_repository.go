package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type conversationRepository struct {
	db *sqlx.DB
}

func NewConversationRepository(db *sqlx.DB) ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// Touch refreshes the dashboard summary. Inbound messages bump the unread count,
// outbound ones reset it. Older messages never overwrite a newer summary.
func (r *conversationRepository) Touch(ctx context.Context, tenantID string, contactID int64, lastMessage string, at time.Time, inbound bool) error {
	query := `
		INSERT INTO conversations (tenant_id, contact_id, last_message, last_message_at, unread_count)
		VALUES ($1, $2, $3, $4, CASE WHEN $5 THEN 1 ELSE 0 END)
		ON CONFLICT (contact_id) DO UPDATE
		SET last_message = CASE WHEN EXCLUDED.last_message_at >= conversations.last_message_at
		                        THEN EXCLUDED.last_message ELSE conversations.last_message END,
		    last_message_at = GREATEST(EXCLUDED.last_message_at, conversations.last_message_at),
		    unread_count = CASE WHEN $5 THEN conversations.unread_count + 1 ELSE 0 END
	`

	if _, err := r.db.ExecContext(ctx, query, tenantID, contactID, lastMessage, at, inbound); err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}

	return nil
}
