package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type SequenceStatus string

const (
	SequenceStatusActive    SequenceStatus = "active"
	SequenceStatusCompleted SequenceStatus = "completed"
	SequenceStatusCancelled SequenceStatus = "cancelled"
)

// SequenceStep is one outbound text of a multi-step outreach.
type SequenceStep struct {
	Text string `json:"text" validate:"required"`
}

// SequenceSteps is stored as a jsonb array.
type SequenceSteps []SequenceStep

func (s SequenceSteps) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

func (s *SequenceSteps) Scan(src any) error {
	data, err := bytesOf(src)
	if err != nil {
		return err
	}
	var out SequenceSteps
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode sequence steps: %w", err)
	}
	*s = out
	return nil
}

// SequenceRun tracks progress so a crash resumes at CurrentStep.
type SequenceRun struct {
	ID          int64          `db:"id" json:"id"`
	TenantID    string         `db:"tenant_id" json:"tenant_id"`
	ContactID   int64          `db:"contact_id" json:"contact_id"`
	Instance    string         `db:"instance" json:"instance"`
	Phone       string         `db:"phone" json:"phone"`
	Steps       SequenceSteps  `db:"steps" json:"steps"`
	CurrentStep int            `db:"current_step" json:"current_step"`
	NextRunAt   time.Time      `db:"next_run_at" json:"next_run_at"`
	Status      SequenceStatus `db:"status" json:"status"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// Done reports whether every step has been sent.
func (r *SequenceRun) Done() bool {
	return r.CurrentStep >= len(r.Steps)
}

type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"
)

// OutboxEvent is a background side effect waiting to be relayed to the broker.
type OutboxEvent struct {
	ID          int64           `db:"id" json:"id"`
	TenantID    string          `db:"tenant_id" json:"tenant_id"`
	Topic       string          `db:"topic" json:"topic"`
	Payload     json.RawMessage `db:"payload" json:"payload"`
	Status      OutboxStatus    `db:"status" json:"status"`
	RetryCount  int             `db:"retry_count" json:"retry_count"`
	NextRetryAt time.Time       `db:"next_retry_at" json:"next_retry_at"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
