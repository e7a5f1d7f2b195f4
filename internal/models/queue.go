package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type QueueStatus string

const (
	QueueStatusPending    QueueStatus = "pending"
	QueueStatusProcessing QueueStatus = "processing"
	QueueStatusCompleted  QueueStatus = "completed"
	QueueStatusDead       QueueStatus = "dead"
)

// EventKind is the gateway event name carried in the webhook body.
type EventKind string

const (
	EventConnectionUpdate EventKind = "connection.update"
	EventContactsUpsert   EventKind = "contacts.upsert"
	EventContactsUpdate   EventKind = "contacts.update"
	EventMessagesUpsert   EventKind = "messages.upsert"
	EventMessagesSet      EventKind = "messages.set"
)

// Supported reports whether the processor has a handler for the kind.
func (k EventKind) Supported() bool {
	switch k {
	case EventConnectionUpdate, EventContactsUpsert, EventContactsUpdate, EventMessagesUpsert, EventMessagesSet:
		return true
	}
	return false
}

// GatewayEvent is the envelope posted by the chat gateway.
type GatewayEvent struct {
	Event    EventKind       `json:"event"`
	Instance string          `json:"instance"`
	Data     json.RawMessage `json:"data"`
}

// QueueRecord is one durable unit of inbound work.
type QueueRecord struct {
	ID             int64           `db:"id" json:"id"`
	TenantID       string          `db:"tenant_id" json:"tenant_id"`
	GatewayEventID string          `db:"gateway_event_id" json:"gateway_event_id"`
	EventKind      EventKind       `db:"event_kind" json:"event_kind"`
	Instance       string          `db:"instance" json:"instance"`
	Payload        json.RawMessage `db:"payload" json:"payload"`
	Status         QueueStatus     `db:"status" json:"status"`
	Attempts       int             `db:"attempts" json:"attempts"`
	NextRetryAt    time.Time       `db:"next_retry_at" json:"next_retry_at"`
	ErrorLog       ErrorHistory    `db:"error_log" json:"error_log"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// ErrorEntry is one failed attempt.
type ErrorEntry struct {
	Error string    `json:"error"`
	Time  time.Time `json:"time"`
}

// ErrorHistory is an ordered jsonb list of failed attempts.
type ErrorHistory []ErrorEntry

// Value implements driver.Valuer.
func (h ErrorHistory) Value() (driver.Value, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h)
}

// Scan implements sql.Scanner.
func (h *ErrorHistory) Scan(src any) error {
	if src == nil {
		*h = ErrorHistory{}
		return nil
	}
	data, err := bytesOf(src)
	if err != nil {
		return err
	}
	var out ErrorHistory
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode error history: %w", err)
	}
	*h = out
	return nil
}

// Last returns the most recent error message.
func (h ErrorHistory) Last() string {
	if len(h) == 0 {
		return ""
	}
	return h[len(h)-1].Error
}

// DeadLetterEntry is written once when a record exhausts its attempts.
type DeadLetterEntry struct {
	ID               int64           `db:"id" json:"id"`
	OriginalRecordID int64           `db:"original_record_id" json:"original_record_id"`
	TenantID         string          `db:"tenant_id" json:"tenant_id"`
	EventKind        EventKind       `db:"event_kind" json:"event_kind"`
	Payload          json.RawMessage `db:"payload" json:"payload"`
	LastError        string          `db:"last_error" json:"last_error"`
	ErrorHistory     ErrorHistory    `db:"error_history" json:"error_history"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// Connection maps a gateway instance to its tenant.
type Connection struct {
	ID        int64          `db:"id" json:"id"`
	TenantID  string         `db:"tenant_id" json:"tenant_id"`
	Instance  string         `db:"instance" json:"instance"`
	Status    string         `db:"status" json:"status"`
	OwnerJID  sql.NullString `db:"owner_jid" json:"owner_jid,omitempty"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}
