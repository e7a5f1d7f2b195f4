package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ppopeskul/convoflow/internal/models"
)

const workflowColumns = `id, tenant_id, name, status, nodes, edges, created_at, updated_at`

type workflowRepository struct {
	db *sqlx.DB
}

func NewWorkflowRepository(db *sqlx.DB) WorkflowRepository {
	return &workflowRepository{
		db: db,
	}
}

// Save inserts or replaces a workflow graph. A workflow id owned by another
// tenant is never overwritten.
func (r *workflowRepository) Save(ctx context.Context, wf *models.Workflow) (*models.Workflow, error) {
	query := `
		INSERT INTO workflows (id, tenant_id, name, status, nodes, edges, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    status = EXCLUDED.status,
		    nodes = EXCLUDED.nodes,
		    edges = EXCLUDED.edges,
		    updated_at = NOW()
		WHERE workflows.tenant_id = EXCLUDED.tenant_id
		RETURNING ` + workflowColumns

	var out models.Workflow
	err := r.db.GetContext(ctx, &out, query, wf.ID, wf.TenantID, wf.Name, wf.Status, wf.Nodes, wf.Edges)
	if err != nil {
		if translate(err) == ErrNotFound {
			return nil, fmt.Errorf("failed to save workflow: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save workflow: %w", err)
	}

	return &out, nil
}

func (r *workflowRepository) GetByID(ctx context.Context, tenantID string, id string) (*models.Workflow, error) {
	query := `SELECT ` + workflowColumns + ` FROM workflows WHERE tenant_id = $1 AND id = $2`

	var wf models.Workflow
	if err := r.db.GetContext(ctx, &wf, query, tenantID, id); err != nil {
		return nil, fmt.Errorf("failed to get workflow: %w", translate(err))
	}

	return &wf, nil
}

// ListActive returns the tenant's active workflows in creation order.
func (r *workflowRepository) ListActive(ctx context.Context, tenantID string) ([]*models.Workflow, error) {
	query := `
		SELECT ` + workflowColumns + `
		FROM workflows
		WHERE tenant_id = $1 AND status = $2
		ORDER BY created_at ASC, id ASC
	`

	var workflows []*models.Workflow
	if err := r.db.SelectContext(ctx, &workflows, query, tenantID, models.WorkflowStatusActive); err != nil {
		return nil, fmt.Errorf("failed to list active workflows: %w", err)
	}

	return workflows, nil
}
