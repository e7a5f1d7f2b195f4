package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/repository"
)

type Service struct {
	Ingest    IngestService
	Queue     QueueProcessor
	Workflows WorkflowService
	Scheduler SchedulerService
	Health    HealthService
}

// NewService wires the pipeline. store and publisher may be nil, which
// disables media persistence and outbox publishing respectively.
func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	locker ContactLocker,
	store ObjectStorage,
	publisher EventPublisher,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	gatewayBreaker := NewCircuitBreaker("gateway", &cfg.Gateway.CircuitBreaker, logger)
	completionBreaker := NewCircuitBreaker("completion", &cfg.Completion.CircuitBreaker, logger)

	gateway := NewGatewayClient(&cfg.Gateway, gatewayBreaker, logger)
	completion := NewCompletionClient(&cfg.Completion, completionBreaker, logger)
	settings := NewSettingsProvider(repo, cfg.TenantDefaults)
	counter := NewSendCounter(redisClient)

	dispatcher := NewDispatcher(repo, gateway, counter, settings, logger, opts...)
	sequences := NewSequenceRunner(&cfg.Dispatcher, repo, settings, dispatcher, logger, opts...)
	executor := NewWorkflowExecutor(&cfg.Workflow, repo, locker, settings, dispatcher, completion,
		NewWebhookCaller(), sequences, logger, opts...)
	router := NewAutomationRouter(repo, locker, settings, executor, logger, opts...)
	normalizer := NewMessageNormalizer(repo, gateway, store, cfg.Storage.MaxMediaBytes, logger, opts...)
	handler := NewEventHandler(repo, normalizer, router, logger, opts...)

	queue := NewQueueProcessor(&cfg.Queue, repo, handler, logger, opts...)
	responder := NewResponder(&cfg.Buffer, cfg.Completion.HistoryLimit, repo, locker, settings,
		completion, gateway, dispatcher, logger, opts...)
	relay := NewOutboxRelay(&cfg.Outbox, repo, publisher, logger, opts...)

	schedulerService := NewSchedulerService(&cfg.Scheduler, SchedulerTasks{
		Queue:     queue,
		Responder: responder,
		Workflows: executor,
		Sequences: sequences,
		Outbox:    relay,
	}, logger)

	return &Service{
		Ingest:    NewIngestService(&cfg.Ingest, repo, logger, opts...),
		Queue:     queue,
		Workflows: NewWorkflowService(repo, logger),
		Scheduler: schedulerService,
		Health:    NewHealthService(repo, redisClient, schedulerService, gatewayBreaker, completionBreaker),
	}
}
