package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ppopeskul/convoflow/internal/models"
)

const deadLetterColumns = `id, original_record_id, tenant_id, event_kind, payload, last_error, error_history, created_at`

type deadLetterRepository struct {
	db *sqlx.DB
}

func NewDeadLetterRepository(db *sqlx.DB) DeadLetterRepository {
	return &deadLetterRepository{
		db: db,
	}
}

// List returns dead letters newest first.
func (r *deadLetterRepository) List(ctx context.Context, offset int, limit int) ([]*models.DeadLetterEntry, error) {
	query := `
		SELECT ` + deadLetterColumns + `
		FROM dead_letters
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	var entries []*models.DeadLetterEntry
	if err := r.db.SelectContext(ctx, &entries, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list dead letters: %w", err)
	}

	return entries, nil
}

func (r *deadLetterRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM dead_letters`); err != nil {
		return 0, fmt.Errorf("failed to count dead letters: %w", err)
	}

	return count, nil
}

func (r *deadLetterRepository) GetByID(ctx context.Context, id int64) (*models.DeadLetterEntry, error) {
	query := `SELECT ` + deadLetterColumns + ` FROM dead_letters WHERE id = $1`

	var entry models.DeadLetterEntry
	if err := r.db.GetContext(ctx, &entry, query, id); err != nil {
		return nil, fmt.Errorf("failed to get dead letter: %w", translate(err))
	}

	return &entry, nil
}
