package models

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type HandlingMode string

const (
	HandlingModeAI     HandlingMode = "ai"
	HandlingModeHuman  HandlingMode = "human"
	HandlingModeManual HandlingMode = "manual"
)

// Contact is a tenant-scoped chat participant, keyed by (tenant_id, phone).
type Contact struct {
	ID                int64          `db:"id" json:"id"`
	TenantID          string         `db:"tenant_id" json:"tenant_id"`
	Phone             string         `db:"phone" json:"phone"`
	Name              string         `db:"name" json:"name"`
	Instance          string         `db:"instance" json:"instance"`
	HandlingMode      HandlingMode   `db:"handling_mode" json:"handling_mode"`
	FlowStatus        FlowStatus     `db:"flow_status" json:"flow_status"`
	CurrentWorkflowID sql.NullString `db:"current_workflow_id" json:"current_workflow_id,omitempty"`
	CurrentNodeID     sql.NullString `db:"current_node_id" json:"current_node_id,omitempty"`
	FlowResumeAt      sql.NullTime   `db:"flow_resume_at" json:"flow_resume_at,omitempty"`
	CollectedData     JSONMap        `db:"collected_data" json:"collected_data"`
	AIResponseDueAt   sql.NullTime   `db:"ai_response_due_at" json:"ai_response_due_at,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

type FlowStatus string

const (
	FlowStatusIdle          FlowStatus = "idle"
	FlowStatusAwaitingInput FlowStatus = "awaiting_input"
	FlowStatusRunning       FlowStatus = "running"
	FlowStatusScheduled     FlowStatus = "scheduled"
)

var ErrInvalidFlowState = errors.New("invalid flow state")

// FlowState is the per-contact workflow pointer. The zero value is Idle and
// the only way to build the other variants is through their constructors.
type FlowState struct {
	status     FlowStatus
	workflowID string
	nodeID     string
	resumeAt   time.Time
}

func IdleState() FlowState { return FlowState{status: FlowStatusIdle} }

func AwaitingInputState(workflowID, nodeID string) FlowState {
	return FlowState{status: FlowStatusAwaitingInput, workflowID: workflowID, nodeID: nodeID}
}

func RunningState(workflowID, nodeID string) FlowState {
	return FlowState{status: FlowStatusRunning, workflowID: workflowID, nodeID: nodeID}
}

func ScheduledState(workflowID, nodeID string, resumeAt time.Time) FlowState {
	return FlowState{status: FlowStatusScheduled, workflowID: workflowID, nodeID: nodeID, resumeAt: resumeAt}
}

func (s FlowState) Status() FlowStatus {
	if s.status == "" {
		return FlowStatusIdle
	}
	return s.status
}

func (s FlowState) IsIdle() bool        { return s.Status() == FlowStatusIdle }
func (s FlowState) WorkflowID() string  { return s.workflowID }
func (s FlowState) NodeID() string      { return s.nodeID }
func (s FlowState) ResumeAt() time.Time { return s.resumeAt }

// AwaitingAt reports whether the contact is parked on nodeID waiting for an answer.
func (s FlowState) AwaitingAt(nodeID string) bool {
	return s.Status() == FlowStatusAwaitingInput && s.nodeID == nodeID
}

// FlowState rebuilds the tagged state from the persisted columns.
func (c *Contact) FlowState() (FlowState, error) {
	switch c.FlowStatus {
	case "", FlowStatusIdle:
		return IdleState(), nil
	case FlowStatusAwaitingInput, FlowStatusRunning:
		if !c.CurrentWorkflowID.Valid || !c.CurrentNodeID.Valid {
			return FlowState{}, fmt.Errorf("%w: %s without pointer", ErrInvalidFlowState, c.FlowStatus)
		}
		if c.FlowStatus == FlowStatusRunning {
			return RunningState(c.CurrentWorkflowID.String, c.CurrentNodeID.String), nil
		}
		return AwaitingInputState(c.CurrentWorkflowID.String, c.CurrentNodeID.String), nil
	case FlowStatusScheduled:
		if !c.CurrentWorkflowID.Valid || !c.CurrentNodeID.Valid || !c.FlowResumeAt.Valid {
			return FlowState{}, fmt.Errorf("%w: scheduled without pointer", ErrInvalidFlowState)
		}
		return ScheduledState(c.CurrentWorkflowID.String, c.CurrentNodeID.String, c.FlowResumeAt.Time), nil
	default:
		return FlowState{}, fmt.Errorf("%w: unknown status %q", ErrInvalidFlowState, c.FlowStatus)
	}
}

// SetFlowState writes the variant back into the column fields.
func (c *Contact) SetFlowState(s FlowState) {
	c.FlowStatus = s.Status()
	c.CurrentWorkflowID = nullString(s.workflowID)
	c.CurrentNodeID = nullString(s.nodeID)
	if s.Status() == FlowStatusScheduled {
		c.FlowResumeAt = sql.NullTime{Time: s.resumeAt, Valid: true}
	} else {
		c.FlowResumeAt = sql.NullTime{}
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
