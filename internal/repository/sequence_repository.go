package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ppopeskul/convoflow/internal/models"
)

const sequenceColumns = `id, tenant_id, contact_id, instance, phone, steps, current_step, next_run_at, status,
	created_at, updated_at`

type sequenceRepository struct {
	db *sqlx.DB
}

func NewSequenceRepository(db *sqlx.DB) SequenceRepository {
	return &sequenceRepository{
		db: db,
	}
}

func (r *sequenceRepository) Create(ctx context.Context, run *models.SequenceRun) (*models.SequenceRun, error) {
	query := `
		INSERT INTO sequence_runs (tenant_id, contact_id, instance, phone, steps, current_step, next_run_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $7, NOW(), NOW())
		RETURNING ` + sequenceColumns

	var out models.SequenceRun
	err := r.db.GetContext(ctx, &out, query,
		run.TenantID,
		run.ContactID,
		run.Instance,
		run.Phone,
		run.Steps,
		run.NextRunAt,
		models.SequenceStatusActive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sequence run: %w", err)
	}

	return &out, nil
}

func (r *sequenceRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*models.SequenceRun, error) {
	query := `
		SELECT ` + sequenceColumns + `
		FROM sequence_runs
		WHERE status = $1 AND next_run_at <= $2
		ORDER BY next_run_at ASC
		LIMIT $3
	`

	var runs []*models.SequenceRun
	if err := r.db.SelectContext(ctx, &runs, query, models.SequenceStatusActive, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list due sequence runs: %w", err)
	}

	return runs, nil
}

// Claim leases the run's current step to one sender by moving next_run_at to
// leaseUntil. It fails with ErrConflict when another sender already holds the
// step or the run advanced since it was listed.
func (r *sequenceRepository) Claim(ctx context.Context, run *models.SequenceRun, now time.Time, leaseUntil time.Time) (*models.SequenceRun, error) {
	query := `
		UPDATE sequence_runs
		SET next_run_at = $4, updated_at = NOW()
		WHERE id = $1 AND current_step = $2 AND status = $5 AND next_run_at <= $3
		RETURNING ` + sequenceColumns

	var out models.SequenceRun
	err := r.db.GetContext(ctx, &out, query, run.ID, run.CurrentStep, now, leaseUntil, models.SequenceStatusActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to claim sequence run: %w", ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim sequence run: %w", err)
	}

	return &out, nil
}

// SaveProgress persists the step pointer after each send. The update only
// applies while the run is active, so a cancelled run is never revived.
func (r *sequenceRepository) SaveProgress(ctx context.Context, run *models.SequenceRun) error {
	query := `
		UPDATE sequence_runs
		SET current_step = $2, next_run_at = $3, status = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
	`

	res, err := r.db.ExecContext(ctx, query, run.ID, run.CurrentStep, run.NextRunAt, run.Status, models.SequenceStatusActive)
	if err != nil {
		return fmt.Errorf("failed to save sequence progress: %w", err)
	}

	return expectOne(res)
}
