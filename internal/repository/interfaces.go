package repository

import (
	"context"
	"time"

	"github.com/ppopeskul/convoflow/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	Queue() QueueRepository
	DeadLetter() DeadLetterRepository
	Connection() ConnectionRepository
	Settings() SettingsRepository
	Contact() ContactRepository
	Message() MessageRepository
	Conversation() ConversationRepository
	Buffer() BufferRepository
	Workflow() WorkflowRepository
	Sequence() SequenceRepository
	Outbox() OutboxRepository
}

// QueueRepository persists inbound work. Every status change is conditional on the prior status.
type QueueRepository interface {
	Enqueue(ctx context.Context, record *models.QueueRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.QueueRecord, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]*models.QueueRecord, error)
	Claim(ctx context.Context, id int64, now time.Time) (*models.QueueRecord, error)
	MarkCompleted(ctx context.Context, id int64, now time.Time) error
	ScheduleRetry(ctx context.Context, id int64, attempts int, nextRetryAt time.Time, entry models.ErrorEntry) error
	MarkDead(ctx context.Context, id int64, attempts int, entry models.ErrorEntry) (*models.DeadLetterEntry, error)
	ReapStale(ctx context.Context, staleBefore time.Time, now time.Time) (int64, error)
	Requeue(ctx context.Context, id int64, now time.Time) error
}

type DeadLetterRepository interface {
	List(ctx context.Context, offset int, limit int) ([]*models.DeadLetterEntry, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.DeadLetterEntry, error)
}

type ConnectionRepository interface {
	GetByInstance(ctx context.Context, instance string) (*models.Connection, error)
	UpdateStatus(ctx context.Context, instance string, status string, ownerJID string, now time.Time) error
}

type SettingsRepository interface {
	Get(ctx context.Context, tenantID string) (*models.TenantSettings, error)
}

type ContactRepository interface {
	Upsert(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	GetByID(ctx context.Context, id int64) (*models.Contact, error)
	SaveState(ctx context.Context, contact *models.Contact) error
	SetHandlingMode(ctx context.Context, id int64, mode models.HandlingMode) error
	ListScheduledDue(ctx context.Context, now time.Time, limit int) ([]*models.Contact, error)
}

type MessageRepository interface {
	Upsert(ctx context.Context, msg *models.Message) (*models.Message, error)
	MarkRouted(ctx context.Context, id int64, now time.Time) error
	LastAssistantAt(ctx context.Context, contactID int64) (time.Time, bool, error)
	History(ctx context.Context, contactID int64, limit int) ([]*models.Message, error)
	CountByContact(ctx context.Context, contactID int64) (int64, error)
}

type ConversationRepository interface {
	Touch(ctx context.Context, tenantID string, contactID int64, lastMessage string, at time.Time, inbound bool) error
}

type BufferRepository interface {
	Append(ctx context.Context, tenantID string, contactID int64, text string, triggerAt time.Time) (*models.MessageBuffer, error)
	Requeue(ctx context.Context, buf *models.MessageBuffer, triggerAt time.Time) (*models.MessageBuffer, error)
	ClaimReady(ctx context.Context, now time.Time, limit int) ([]*models.MessageBuffer, error)
}

type WorkflowRepository interface {
	Save(ctx context.Context, wf *models.Workflow) (*models.Workflow, error)
	GetByID(ctx context.Context, tenantID string, id string) (*models.Workflow, error)
	ListActive(ctx context.Context, tenantID string) ([]*models.Workflow, error)
}

type SequenceRepository interface {
	Create(ctx context.Context, run *models.SequenceRun) (*models.SequenceRun, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]*models.SequenceRun, error)
	Claim(ctx context.Context, run *models.SequenceRun, now time.Time, leaseUntil time.Time) (*models.SequenceRun, error)
	SaveProgress(ctx context.Context, run *models.SequenceRun) error
}

type OutboxRepository interface {
	Add(ctx context.Context, event *models.OutboxEvent) error
	ListPending(ctx context.Context, now time.Time, limit int) ([]*models.OutboxEvent, error)
	MarkSent(ctx context.Context, id int64, now time.Time) error
	MarkRetry(ctx context.Context, id int64, retryCount int, nextRetryAt time.Time, status models.OutboxStatus) error
}
