// Package handler implements the HTTP API described in api/openapi.yaml.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/api"
	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/middleware"
	"github.com/ppopeskul/convoflow/internal/scheduler"
	"github.com/ppopeskul/convoflow/internal/service"
)

const (
	errorCodeSchedulerAlreadyRunning = "SCHEDULER_ALREADY_RUNNING"
	errorCodeSchedulerNotRunning     = "SCHEDULER_NOT_RUNNING"
	errorCodeInvalidRequest          = "INVALID_REQUEST"
	errorCodeNotFound                = "NOT_FOUND"
	errorCodeConflict                = "CONFLICT"
)

const (
	errorMessageSchedulerAlreadyRunning = "Scheduler is already running"
	errorMessageSchedulerNotRunning     = "Scheduler is not running"
	errorMessageFailedToStartScheduler  = "Failed to start scheduler"
	errorMessageFailedToStopScheduler   = "Failed to stop scheduler"
)

const (
	schedulerMessageStarted = "Scheduler started successfully"
	schedulerMessageStopped = "Scheduler stopped successfully"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

type Handler struct {
	service *service.Service
	ingest  *config.IngestConfig
	logger  *zap.Logger
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, ingest *config.IngestConfig, logger *zap.Logger) api.ServerInterface {
	return &Handler{
		service: service,
		ingest:  ingest,
		logger:  logger,
	}
}

// StartScheduler implements api.ServerInterface.
func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	err := h.service.Scheduler.Start()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerAlreadyRunning, errorMessageSchedulerAlreadyRunning)
			return
		}

		h.logger.Error("Failed to start scheduler",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStartScheduler)
		return
	}

	render.JSON(w, r, api.SchedulerResponse{
		Status:  api.SchedulerResponseStatusStarted,
		Message: schedulerMessageStarted,
	})
}

// StopScheduler implements api.ServerInterface.
func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	err := h.service.Scheduler.Stop()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerNotRunning, errorMessageSchedulerNotRunning)
			return
		}

		h.logger.Error("Failed to stop scheduler",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStopScheduler)
		return
	}

	render.JSON(w, r, api.SchedulerResponse{
		Status:  api.SchedulerResponseStatusStopped,
		Message: schedulerMessageStopped,
	})
}

// HealthCheck implements api.ServerInterface. Unhealthy answers 503; degraded
// still answers 200 so the service stays in rotation.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	response := api.HealthResponse{
		Status:    health.Status,
		Timestamp: time.Now().UTC(),
	}

	if health.SchedulerStatus != "" {
		status := health.SchedulerStatus
		response.SchedulerStatus = &status
	}

	if health.DatabaseStatus != "" {
		status := health.DatabaseStatus
		response.DatabaseStatus = &status
	}

	if health.RedisStatus != "" {
		status := health.RedisStatus
		response.RedisStatus = &status
	}

	if len(health.Schedulers) > 0 {
		schedulers := make(map[string]api.HealthResponseSchedulerStatus, len(health.Schedulers))
		for name, running := range health.Schedulers {
			schedulers[name] = api.HealthResponseSchedulerStatusStopped
			if running {
				schedulers[name] = api.HealthResponseSchedulerStatusRunning
			}
		}
		response.Schedulers = &schedulers
	}

	if len(health.CircuitBreakers) > 0 {
		breakers := health.CircuitBreakers
		response.CircuitBreakers = &breakers
	}

	if health.Status == api.Unhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	now := time.Now().UTC()
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: &now,
	})
}

func pagination(page, limit *int) (int, int) {
	p, l := defaultPage, defaultLimit
	if page != nil && *page >= 1 {
		p = *page
	}
	if limit != nil && *limit >= 1 && *limit <= maxLimit {
		l = *limit
	}
	return p, l
}
