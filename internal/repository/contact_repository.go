package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ppopeskul/convoflow/internal/models"
)

const contactColumns = `id, tenant_id, phone, name, instance, handling_mode, flow_status, current_workflow_id, current_node_id,
	flow_resume_at, collected_data, ai_response_due_at, created_at, updated_at`

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Upsert inserts the contact or refreshes its name and instance, keyed by (tenant_id, phone).
// Flow state and handling mode of an existing row are left untouched.
func (r *contactRepository) Upsert(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (tenant_id, phone, name, instance, handling_mode, flow_status, collected_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, '{}'::jsonb, NOW(), NOW())
		ON CONFLICT (tenant_id, phone) DO UPDATE
		SET name = COALESCE(NULLIF(EXCLUDED.name, ''), contacts.name),
		    instance = COALESCE(NULLIF(EXCLUDED.instance, ''), contacts.instance),
		    updated_at = NOW()
		RETURNING ` + contactColumns

	mode := contact.HandlingMode
	if mode == "" {
		mode = models.HandlingModeAI
	}

	var out models.Contact
	err := r.db.GetContext(ctx, &out, query,
		contact.TenantID,
		contact.Phone,
		contact.Name,
		contact.Instance,
		mode,
		models.FlowStatusIdle,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert contact: %w", err)
	}

	return &out, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	var contact models.Contact
	if err := r.db.GetContext(ctx, &contact, query, id); err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", translate(err))
	}

	return &contact, nil
}

// SaveState writes the workflow pointer and collected data. The handling mode
// is written only by SetHandlingMode.
func (r *contactRepository) SaveState(ctx context.Context, contact *models.Contact) error {
	query := `
		UPDATE contacts
		SET flow_status = $2,
		    current_workflow_id = $3,
		    current_node_id = $4,
		    flow_resume_at = $5,
		    collected_data = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		contact.ID,
		contact.FlowStatus,
		contact.CurrentWorkflowID,
		contact.CurrentNodeID,
		contact.FlowResumeAt,
		contact.CollectedData,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact state: %w", err)
	}

	if err := expectContact(res); err != nil {
		return fmt.Errorf("failed to save contact state: %w", err)
	}

	return nil
}

func (r *contactRepository) SetHandlingMode(ctx context.Context, id int64, mode models.HandlingMode) error {
	query := `UPDATE contacts SET handling_mode = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, mode)
	if err != nil {
		return fmt.Errorf("failed to set handling mode: %w", err)
	}

	if err := expectContact(res); err != nil {
		return fmt.Errorf("failed to set handling mode: %w", err)
	}

	return nil
}

func expectContact(res rowsAffecter) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListScheduledDue returns contacts parked on a wait node whose resume time has passed.
func (r *contactRepository) ListScheduledDue(ctx context.Context, now time.Time, limit int) ([]*models.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE flow_status = $1 AND flow_resume_at <= $2
		ORDER BY flow_resume_at ASC
		LIMIT $3
	`

	var contacts []*models.Contact
	if err := r.db.SelectContext(ctx, &contacts, query, models.FlowStatusScheduled, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list scheduled contacts: %w", err)
	}

	return contacts, nil
}
