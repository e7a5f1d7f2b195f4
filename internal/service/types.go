package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/ppopeskul/convoflow/internal/api"
	"github.com/ppopeskul/convoflow/internal/models"
)

var (
	ErrDailyCapReached = errors.New("daily send cap reached")
	ErrContactBusy     = errors.New("contact is being processed by another worker")
	ErrMediaTooLarge   = errors.New("media exceeds size limit")
	ErrMalformedEvent  = errors.New("malformed event payload")
	ErrSentNotRecorded = errors.New("message sent but not recorded")
)

type HealthStatus struct {
	Status          api.HealthResponseStatus          `json:"status"`
	SchedulerStatus api.HealthResponseSchedulerStatus `json:"scheduler_status"`
	Schedulers      map[string]bool                   `json:"schedulers,omitempty"`
	DatabaseStatus  api.HealthResponseDatabaseStatus  `json:"database_status"`
	RedisStatus     api.HealthResponseRedisStatus     `json:"redis_status"`
	CircuitBreakers []api.CircuitBreakerStatus        `json:"circuit_breakers,omitempty"`
}

// IngestStatus is the token returned to the chat gateway.
type IngestStatus string

const (
	IngestQueued            IngestStatus = "QUEUED"
	IngestQueuedDuplicate   IngestStatus = "QUEUED_DUPLICATE"
	IngestInvalidJSON       IngestStatus = "INVALID_JSON"
	IngestInvalidPayload    IngestStatus = "INVALID_PAYLOAD"
	IngestIgnored           IngestStatus = "IGNORED"
	IngestAcceptedWithError IngestStatus = "ACCEPTED_WITH_ERROR"
)

type ProcessOutcome string

const (
	OutcomeOK             ProcessOutcome = "OK"
	OutcomeRetryScheduled ProcessOutcome = "RETRY_SCHEDULED"
	OutcomeDeadLettered   ProcessOutcome = "DEAD_LETTERED"
	OutcomeSkipped        ProcessOutcome = "SKIPPED"
)

type DeadLetterPage struct {
	Items      []*models.DeadLetterEntry
	Page       int
	Limit      int
	TotalItems int
	TotalPages int
}

// Inbound is a normalized message together with its contact.
type Inbound struct {
	TenantID string
	Instance string
	Contact  *models.Contact
	Message  *models.Message
}

// OutboundText is one automated reply. Settings may be nil, in which case
// the tenant settings are resolved on send.
type OutboundText struct {
	Contact  *models.Contact
	Instance string
	Text     string
	Settings *models.TenantSettings
}

type OutboundMedia struct {
	Kind     models.MessageKind `json:"mediatype"`
	MimeType string             `json:"mimetype"`
	URL      string             `json:"media"`
	Caption  string             `json:"caption,omitempty"`
	FileName string             `json:"fileName,omitempty"`
}

type MediaBlob struct {
	Data     []byte
	MimeType string
}

type CompletionRequest struct {
	SystemPrompt string
	History      []models.HistoryTurn
	UserMessage  string
}

type StepStatus string

const (
	StepWaitingForInput StepStatus = "waiting_for_input"
	StepCompleted       StepStatus = "completed"
	StepScheduled       StepStatus = "scheduled"
	StepLoopHalted      StepStatus = "loop_halted"
	StepDepthExceeded   StepStatus = "depth_exceeded"
	StepNoEntry         StepStatus = "no_entry"
)

type StepInput struct {
	Instance string
	Contact  *models.Contact
	Workflow *models.Workflow
	Text     string
	// Resume continues a contact parked on a wait node.
	Resume bool
}

type StepResult struct {
	Status  StepStatus
	NodeID  string
	Visited []string
}

type options struct {
	now    func() time.Time
	random func(n int64) int64
}

// Option overrides a service's clock or randomness, mostly for tests.
type Option func(*options)

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRandom replaces the jitter source; fn returns a value in [0, n).
func WithRandom(fn func(n int64) int64) Option {
	return func(o *options) { o.random = fn }
}

func buildOptions(opts []Option) options {
	o := options{
		now:    time.Now,
		random: rand.Int63n,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
