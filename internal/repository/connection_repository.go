package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ppopeskul/convoflow/internal/models"
)

type connectionRepository struct {
	db *sqlx.DB
}

func NewConnectionRepository(db *sqlx.DB) ConnectionRepository {
	return &connectionRepository{
		db: db,
	}
}

// GetByInstance resolves the tenant owning a gateway instance.
func (r *connectionRepository) GetByInstance(ctx context.Context, instance string) (*models.Connection, error) {
	query := `
		SELECT id, tenant_id, instance, status, owner_jid, updated_at
		FROM connections
		WHERE instance = $1
	`

	var conn models.Connection
	if err := r.db.GetContext(ctx, &conn, query, instance); err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", translate(err))
	}

	return &conn, nil
}

// UpdateStatus records the latest connection state. An empty owner keeps the stored one.
func (r *connectionRepository) UpdateStatus(ctx context.Context, instance string, status string, ownerJID string, now time.Time) error {
	query := `
		UPDATE connections
		SET status = $2,
		    owner_jid = COALESCE($3, owner_jid),
		    updated_at = $4
		WHERE instance = $1
	`

	owner := sql.NullString{String: ownerJID, Valid: ownerJID != ""}
	res, err := r.db.ExecContext(ctx, query, instance, status, owner, now)
	if err != nil {
		return fmt.Errorf("failed to update connection status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to update connection status: %w", ErrNotFound)
	}

	return nil
}
