package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ppopeskul/convoflow/internal/models"
)

const queueColumns = `id, tenant_id, gateway_event_id, event_kind, instance, payload, status, attempts,
	next_retry_at, error_log, created_at, updated_at`

type queueRepository struct {
	db *sqlx.DB
}

func NewQueueRepository(db *sqlx.DB) QueueRepository {
	return &queueRepository{
		db: db,
	}
}

// Enqueue inserts a pending record. A redelivered event returns ErrDuplicate.
func (r *queueRepository) Enqueue(ctx context.Context, record *models.QueueRecord) (int64, error) {
	query := `
		INSERT INTO queue_records (tenant_id, gateway_event_id, event_kind, instance, payload, status, attempts, next_retry_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $7, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		record.TenantID,
		record.GatewayEventID,
		record.EventKind,
		record.Instance,
		string(record.Payload),
		models.QueueStatusPending,
		record.NextRetryAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue record: %w", translate(err))
	}

	return id, nil
}

// GetByID retrieves a single record.
func (r *queueRepository) GetByID(ctx context.Context, id int64) (*models.QueueRecord, error) {
	query := `SELECT ` + queueColumns + ` FROM queue_records WHERE id = $1`

	var record models.QueueRecord
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, fmt.Errorf("failed to get queue record: %w", translate(err))
	}

	return &record, nil
}

// ListDue returns pending records whose retry time has passed, oldest first.
func (r *queueRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*models.QueueRecord, error) {
	query := `
		SELECT ` + queueColumns + `
		FROM queue_records
		WHERE status = $1 AND next_retry_at <= $2
		ORDER BY next_retry_at ASC, id ASC
		LIMIT $3
	`

	var records []*models.QueueRecord
	if err := r.db.SelectContext(ctx, &records, query, models.QueueStatusPending, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list due records: %w", err)
	}

	return records, nil
}

// Claim moves a due pending record to processing. Returns ErrConflict when
// another invocation got there first or the record is not due.
func (r *queueRepository) Claim(ctx context.Context, id int64, now time.Time) (*models.QueueRecord, error) {
	query := `
		UPDATE queue_records
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4 AND next_retry_at <= $3
		RETURNING ` + queueColumns

	var record models.QueueRecord
	err := r.db.GetContext(ctx, &record, query, id, models.QueueStatusProcessing, now, models.QueueStatusPending)
	if err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to claim record: %w", err)
	}

	return &record, nil
}

// MarkCompleted finishes a processing record.
func (r *queueRepository) MarkCompleted(ctx context.Context, id int64, now time.Time) error {
	query := `
		UPDATE queue_records
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4
	`

	res, err := r.db.ExecContext(ctx, query, id, models.QueueStatusCompleted, now, models.QueueStatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to complete record: %w", err)
	}

	return expectOne(res)
}

// ScheduleRetry returns a processing record to pending and appends to its error log.
func (r *queueRepository) ScheduleRetry(ctx context.Context, id int64, attempts int, nextRetryAt time.Time, entry models.ErrorEntry) error {
	logEntry, err := json.Marshal(models.ErrorHistory{entry})
	if err != nil {
		return fmt.Errorf("failed to encode error entry: %w", err)
	}

	query := `
		UPDATE queue_records
		SET status = $2,
		    attempts = $3,
		    next_retry_at = $4,
		    error_log = error_log || $5::jsonb,
		    updated_at = $6
		WHERE id = $1 AND status = $7
	`

	res, err := r.db.ExecContext(ctx, query,
		id,
		models.QueueStatusPending,
		attempts,
		nextRetryAt,
		string(logEntry),
		entry.Time,
		models.QueueStatusProcessing,
	)
	if err != nil {
		return fmt.Errorf("failed to schedule retry: %w", err)
	}

	return expectOne(res)
}

// MarkDead marks the record dead and writes its dead-letter entry in one statement.
// A replayed record that dies again gets a second entry.
func (r *queueRepository) MarkDead(ctx context.Context, id int64, attempts int, entry models.ErrorEntry) (*models.DeadLetterEntry, error) {
	logEntry, err := json.Marshal(models.ErrorHistory{entry})
	if err != nil {
		return nil, fmt.Errorf("failed to encode error entry: %w", err)
	}

	query := `
		WITH dead AS (
			UPDATE queue_records
			SET status = $2,
			    attempts = $3,
			    error_log = error_log || $4::jsonb,
			    updated_at = $5
			WHERE id = $1 AND status = $6
			RETURNING id, tenant_id, event_kind, payload, error_log
		)
		INSERT INTO dead_letters (original_record_id, tenant_id, event_kind, payload, last_error, error_history, created_at)
		SELECT id, tenant_id, event_kind, payload, $7, error_log, $5 FROM dead
		RETURNING ` + deadLetterColumns

	var dl models.DeadLetterEntry
	err = r.db.GetContext(ctx, &dl, query,
		id,
		models.QueueStatusDead,
		attempts,
		string(logEntry),
		entry.Time,
		models.QueueStatusProcessing,
		entry.Error,
	)
	if err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to dead-letter record: %w", err)
	}

	return &dl, nil
}

// ReapStale returns records abandoned in processing back to pending.
func (r *queueRepository) ReapStale(ctx context.Context, staleBefore time.Time, now time.Time) (int64, error) {
	query := `
		UPDATE queue_records
		SET status = $1, next_retry_at = $2, updated_at = $2
		WHERE status = $3 AND updated_at < $4
	`

	res, err := r.db.ExecContext(ctx, query, models.QueueStatusPending, now, models.QueueStatusProcessing, staleBefore)
	if err != nil {
		return 0, fmt.Errorf("failed to reap stale records: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return n, nil
}

// Requeue gives a dead record a fresh retry budget.
func (r *queueRepository) Requeue(ctx context.Context, id int64, now time.Time) error {
	query := `
		UPDATE queue_records
		SET status = $2, attempts = 0, next_retry_at = $3, updated_at = $3
		WHERE id = $1 AND status = $4
	`

	res, err := r.db.ExecContext(ctx, query, id, models.QueueStatusPending, now, models.QueueStatusDead)
	if err != nil {
		return fmt.Errorf("failed to requeue record: %w", err)
	}

	return expectOne(res)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func expectOne(res rowsAffecter) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}
