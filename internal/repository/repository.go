package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db           *sqlx.DB
	queue        QueueRepository
	deadLetter   DeadLetterRepository
	connection   ConnectionRepository
	settings     SettingsRepository
	contact      ContactRepository
	message      MessageRepository
	conversation ConversationRepository
	buffer       BufferRepository
	workflow     WorkflowRepository
	sequence     SequenceRepository
	outbox       OutboxRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:           db,
		queue:        NewQueueRepository(db),
		deadLetter:   NewDeadLetterRepository(db),
		connection:   NewConnectionRepository(db),
		settings:     NewSettingsRepository(db),
		contact:      NewContactRepository(db),
		message:      NewMessageRepository(db),
		conversation: NewConversationRepository(db),
		buffer:       NewBufferRepository(db),
		workflow:     NewWorkflowRepository(db),
		sequence:     NewSequenceRepository(db),
		outbox:       NewOutboxRepository(db),
	}
}

func (r *repositoryImpl) Queue() QueueRepository               { return r.queue }
func (r *repositoryImpl) DeadLetter() DeadLetterRepository     { return r.deadLetter }
func (r *repositoryImpl) Connection() ConnectionRepository     { return r.connection }
func (r *repositoryImpl) Settings() SettingsRepository         { return r.settings }
func (r *repositoryImpl) Contact() ContactRepository           { return r.contact }
func (r *repositoryImpl) Message() MessageRepository           { return r.message }
func (r *repositoryImpl) Conversation() ConversationRepository { return r.conversation }
func (r *repositoryImpl) Buffer() BufferRepository             { return r.buffer }
func (r *repositoryImpl) Workflow() WorkflowRepository         { return r.workflow }
func (r *repositoryImpl) Sequence() SequenceRepository         { return r.sequence }
func (r *repositoryImpl) Outbox() OutboxRepository             { return r.outbox }

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
