package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

type MessageKind string

const (
	KindText     MessageKind = "text"
	KindImage    MessageKind = "image"
	KindAudio    MessageKind = "audio"
	KindVideo    MessageKind = "video"
	KindDocument MessageKind = "document"
)

// IsMedia reports whether the kind carries a binary attachment.
func (k MessageKind) IsMedia() bool {
	return k == KindImage || k == KindAudio || k == KindVideo || k == KindDocument
}

type MessageStatus string

const (
	MessageStatusReceived MessageStatus = "received"
	MessageStatusSent     MessageStatus = "sent"
	MessageStatusFailed   MessageStatus = "failed"
)

// Message is a persisted chat message, unique on (tenant_id, gateway_message_id).
type Message struct {
	ID               int64           `db:"id" json:"id"`
	ContactID        int64           `db:"contact_id" json:"contact_id"`
	TenantID         string          `db:"tenant_id" json:"tenant_id"`
	Role             MessageRole     `db:"role" json:"role"`
	Content          string          `db:"content" json:"content"`
	Kind             MessageKind     `db:"kind" json:"kind"`
	MediaURL         sql.NullString  `db:"media_url" json:"media_url,omitempty"`
	GatewayMessageID string          `db:"gateway_message_id" json:"gateway_message_id"`
	Status           MessageStatus   `db:"status" json:"status"`
	RawPayload       json.RawMessage `db:"raw_payload" json:"raw_payload,omitempty"`
	RoutedAt         sql.NullTime    `db:"routed_at" json:"-"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// HistoryTurn is one prior exchange handed to the completion service.
type HistoryTurn struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// Conversation is the lightweight per-contact summary read by the dashboard.
type Conversation struct {
	ID            int64     `db:"id" json:"id"`
	TenantID      string    `db:"tenant_id" json:"tenant_id"`
	ContactID     int64     `db:"contact_id" json:"contact_id"`
	LastMessage   string    `db:"last_message" json:"last_message"`
	LastMessageAt time.Time `db:"last_message_at" json:"last_message_at"`
	UnreadCount   int       `db:"unread_count" json:"unread_count"`
}

// MessageBuffer collects a burst of inbound text for one contact. Attempts
// counts replies to the turn that already failed.
type MessageBuffer struct {
	ContactID         int64     `db:"contact_id" json:"contact_id"`
	TenantID          string    `db:"tenant_id" json:"tenant_id"`
	AggregatedContent string    `db:"aggregated_content" json:"aggregated_content"`
	TriggerAt         time.Time `db:"trigger_at" json:"trigger_at"`
	Attempts          int       `db:"attempts" json:"attempts"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}
