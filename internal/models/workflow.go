package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidWorkflow = errors.New("invalid workflow")

type WorkflowStatus string

const (
	WorkflowStatusDraft    WorkflowStatus = "draft"
	WorkflowStatusActive   WorkflowStatus = "active"
	WorkflowStatusArchived WorkflowStatus = "archived"
)

type NodeType string

const (
	NodeTrigger   NodeType = "trigger"
	NodeMessage   NodeType = "message"
	NodeQuestion  NodeType = "question"
	NodeCondition NodeType = "condition"
	NodeAction    NodeType = "action"
	NodeWait      NodeType = "wait"
	NodeAgent     NodeType = "agent"
	NodeWebhook   NodeType = "webhook"
	NodeDBQuery   NodeType = "db_query"
)

// Workflow is an operator-authored conversational graph. It is read-only while executing.
type Workflow struct {
	ID        string         `db:"id" json:"id" validate:"required"`
	TenantID  string         `db:"tenant_id" json:"tenant_id" validate:"required"`
	Name      string         `db:"name" json:"name" validate:"required,max=200"`
	Status    WorkflowStatus `db:"status" json:"status" validate:"required,oneof=draft active archived"`
	Nodes     Nodes          `db:"nodes" json:"nodes" validate:"required,min=1"`
	Edges     Edges          `db:"edges" json:"edges"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// Node is one step. Data holds the kind-specific payload matching Type.
type Node struct {
	ID          string   `json:"id"`
	Type        NodeType `json:"type"`
	LoopControl bool     `json:"loop_control,omitempty"`
	Data        NodeData `json:"data"`
}

// Edge is a directed transition; Label selects branches.
type Edge struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
	Label  string `json:"label,omitempty"`
}

// NodeData is implemented only by the payload types below.
type NodeData interface {
	nodeType() NodeType
}

type TriggerData struct {
	Keywords []string `json:"keywords" validate:"dive,required"`
	Exact    bool     `json:"exact,omitempty"`
	Any      bool     `json:"any,omitempty"`
}

type MessageData struct {
	Text string `json:"text" validate:"required,max=4096"`
}

type QuestionData struct {
	Prompt   string `json:"prompt" validate:"required,max=4096"`
	Variable string `json:"variable" validate:"required,max=64"`
}

type ConditionData struct {
	Field    string `json:"field" validate:"required"`
	Operator string `json:"operator" validate:"required,oneof=equals not_equals contains exists gt lt"`
	Value    string `json:"value"`
}

type ActionData struct {
	Action string        `json:"action" validate:"required,oneof=set_field handoff start_sequence"`
	Field  string        `json:"field,omitempty" validate:"required_if=Action set_field"`
	Value  string        `json:"value,omitempty"`
	Steps  SequenceSteps `json:"steps,omitempty" validate:"required_if=Action start_sequence,dive"`
}

type WaitData struct {
	DurationSeconds int `json:"duration_seconds" validate:"required,min=1"`
}

type AgentData struct {
	SystemPrompt string `json:"system_prompt" validate:"required"`
	ResultVar    string `json:"result_var,omitempty" validate:"omitempty,max=64"`
}

type WebhookData struct {
	URL            string `json:"url" validate:"required,url"`
	ResultVar      string `json:"result_var,omitempty" validate:"omitempty,max=64"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=10"`
}

type DBQueryData struct {
	Query     string `json:"query" validate:"required,oneof=contact_message_count contact_profile"`
	ResultVar string `json:"result_var" validate:"required,max=64"`
}

func (*TriggerData) nodeType() NodeType   { return NodeTrigger }
func (*MessageData) nodeType() NodeType   { return NodeMessage }
func (*QuestionData) nodeType() NodeType  { return NodeQuestion }
func (*ConditionData) nodeType() NodeType { return NodeCondition }
func (*ActionData) nodeType() NodeType    { return NodeAction }
func (*WaitData) nodeType() NodeType      { return NodeWait }
func (*AgentData) nodeType() NodeType     { return NodeAgent }
func (*WebhookData) nodeType() NodeType   { return NodeWebhook }
func (*DBQueryData) nodeType() NodeType   { return NodeDBQuery }

func newNodeData(t NodeType) (NodeData, error) {
	switch t {
	case NodeTrigger:
		return &TriggerData{}, nil
	case NodeMessage:
		return &MessageData{}, nil
	case NodeQuestion:
		return &QuestionData{}, nil
	case NodeCondition:
		return &ConditionData{}, nil
	case NodeAction:
		return &ActionData{}, nil
	case NodeWait:
		return &WaitData{}, nil
	case NodeAgent:
		return &AgentData{}, nil
	case NodeWebhook:
		return &WebhookData{}, nil
	case NodeDBQuery:
		return &DBQueryData{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %q", ErrInvalidWorkflow, t)
	}
}

// UnmarshalJSON decodes Data into the payload type selected by Type.
func (n *Node) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID          string          `json:"id"`
		Type        NodeType        `json:"type"`
		LoopControl bool            `json:"loop_control"`
		Data        json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	data, err := newNodeData(raw.Type)
	if err != nil {
		return err
	}
	if len(raw.Data) > 0 && string(raw.Data) != "null" {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			return fmt.Errorf("%w: node %s data: %v", ErrInvalidWorkflow, raw.ID, err)
		}
	}
	n.ID = raw.ID
	n.Type = raw.Type
	n.LoopControl = raw.LoopControl
	n.Data = data
	return nil
}

type Nodes []Node

func (n Nodes) Value() (driver.Value, error) {
	if n == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(n)
}

func (n *Nodes) Scan(src any) error {
	data, err := bytesOf(src)
	if err != nil {
		return err
	}
	var out Nodes
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode nodes: %w", err)
	}
	*n = out
	return nil
}

type Edges []Edge

func (e Edges) Value() (driver.Value, error) {
	if e == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(e)
}

func (e *Edges) Scan(src any) error {
	data, err := bytesOf(src)
	if err != nil {
		return err
	}
	var out Edges
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode edges: %w", err)
	}
	*e = out
	return nil
}

// Node returns the node with the given id.
func (w *Workflow) Node(id string) (*Node, bool) {
	for i := range w.Nodes {
		if w.Nodes[i].ID == id {
			return &w.Nodes[i], true
		}
	}
	return nil, false
}

// Trigger returns the unique entry node.
func (w *Workflow) Trigger() (*Node, bool) {
	var found *Node
	for i := range w.Nodes {
		if w.Nodes[i].Type == NodeTrigger {
			if found != nil {
				return nil, false
			}
			found = &w.Nodes[i]
		}
	}
	return found, found != nil
}

// Outgoing returns the edges leaving nodeID in declaration order.
func (w *Workflow) Outgoing(nodeID string) []Edge {
	var out []Edge
	for _, e := range w.Edges {
		if e.Source == nodeID {
			out = append(out, e)
		}
	}
	return out
}

// MatchesTrigger reports whether text starts this workflow. Keyword matches
// rank above catch-all triggers.
func (w *Workflow) MatchesTrigger(text string) (matched bool, catchAll bool) {
	trigger, ok := w.Trigger()
	if !ok {
		return false, false
	}
	data, ok := trigger.Data.(*TriggerData)
	if !ok {
		return false, false
	}
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, kw := range data.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if data.Exact && normalized == kw {
			return true, false
		}
		if !data.Exact && strings.Contains(normalized, kw) {
			return true, false
		}
	}
	return data.Any, data.Any
}

// Validate checks field rules and graph shape before a workflow is saved.
func (w *Workflow) Validate(v *validator.Validate) error {
	if err := v.Struct(w); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorkflow, err)
	}

	seen := make(map[string]bool, len(w.Nodes))
	triggers := 0
	for _, n := range w.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: node without id", ErrInvalidWorkflow)
		}
		if seen[n.ID] {
			return fmt.Errorf("%w: duplicate node id %s", ErrInvalidWorkflow, n.ID)
		}
		seen[n.ID] = true
		if n.Data == nil {
			return fmt.Errorf("%w: node %s has no data", ErrInvalidWorkflow, n.ID)
		}
		if n.Data.nodeType() != n.Type {
			return fmt.Errorf("%w: node %s data does not match type %s", ErrInvalidWorkflow, n.ID, n.Type)
		}
		if err := v.Struct(n.Data); err != nil {
			return fmt.Errorf("%w: node %s: %v", ErrInvalidWorkflow, n.ID, err)
		}
		if n.Type == NodeTrigger {
			triggers++
		}
	}
	if triggers != 1 {
		return fmt.Errorf("%w: expected exactly one trigger node, got %d", ErrInvalidWorkflow, triggers)
	}

	for _, e := range w.Edges {
		if err := v.Struct(e); err != nil {
			return fmt.Errorf("%w: edge: %v", ErrInvalidWorkflow, err)
		}
		if !seen[e.Source] || !seen[e.Target] {
			return fmt.Errorf("%w: edge %s->%s references unknown node", ErrInvalidWorkflow, e.Source, e.Target)
		}
	}
	return nil
}
