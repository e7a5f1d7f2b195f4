package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ppopeskul/convoflow/internal/models"
)

// ChatGateway is the outbound side of the chat gateway REST API.
type ChatGateway interface {
	SendText(ctx context.Context, instance string, phone string, text string) (string, error)
	SendMedia(ctx context.Context, instance string, phone string, media OutboundMedia) (string, error)
	FetchHistory(ctx context.Context, instance string, phone string, limit int) ([]json.RawMessage, error)
	DownloadMedia(ctx context.Context, instance string, message json.RawMessage) (*MediaBlob, error)
}

// CompletionClient generates a reply from a prompt and prior turns.
type CompletionClient interface {
	Generate(ctx context.Context, req CompletionRequest) (string, error)
}

type WebhookCaller interface {
	Call(ctx context.Context, url string, payload any, timeout time.Duration) (map[string]any, error)
}

type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ContactLocker serializes work on one contact across workers.
type ContactLocker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// SendCounter enforces the per-tenant daily outbound cap.
type SendCounter interface {
	Reserve(ctx context.Context, tenantID string, limit int, at time.Time) error
	Release(ctx context.Context, tenantID string, at time.Time) error
}

type SettingsProvider interface {
	Resolve(ctx context.Context, tenantID string) (*models.TenantSettings, error)
}

type IngestService interface {
	Ingest(ctx context.Context, body []byte) IngestStatus
}

type QueueProcessor interface {
	Process(ctx context.Context, id int64) (ProcessOutcome, error)
	ProcessDue(ctx context.Context) error
	ReapStale(ctx context.Context) error
	ListDeadLetters(ctx context.Context, page int, limit int) (*DeadLetterPage, error)
	Replay(ctx context.Context, deadLetterID int64) (int64, error)
}

// EventHandler runs the work behind one queue record. It must be idempotent.
type EventHandler interface {
	Handle(ctx context.Context, record *models.QueueRecord) error
}

type MessageNormalizer interface {
	Normalize(ctx context.Context, tenantID string, instance string, raw json.RawMessage) (*Inbound, error)
}

type AutomationRouter interface {
	Route(ctx context.Context, in *Inbound) error
}

type Responder interface {
	SweepBuffers(ctx context.Context) error
}

type Dispatcher interface {
	Send(ctx context.Context, out OutboundText) (*models.Message, error)
	NextDelay(settings *models.TenantSettings) time.Duration
}

type SequenceRunner interface {
	Start(ctx context.Context, contact *models.Contact, steps models.SequenceSteps) (*models.SequenceRun, error)
	RunDue(ctx context.Context) error
}

type WorkflowExecutor interface {
	Step(ctx context.Context, in StepInput) (*StepResult, error)
	ResumeDue(ctx context.Context) error
}

type WorkflowService interface {
	Save(ctx context.Context, wf *models.Workflow) (*models.Workflow, error)
	Get(ctx context.Context, tenantID string, id string) (*models.Workflow, error)
}

type OutboxRelay interface {
	RelayPending(ctx context.Context) error
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
	Statuses() map[string]bool
}

type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}
