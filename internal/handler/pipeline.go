package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/api"
	"github.com/ppopeskul/convoflow/internal/middleware"
	"github.com/ppopeskul/convoflow/internal/service"
)

const (
	defaultIngestBudget  = 4500 * time.Millisecond
	defaultIngestMaxBody = 1 << 20
)

// IngestEvent implements api.ServerInterface. The chat gateway retries
// aggressively on anything but a fast 200, so every path answers 200 with a
// status token, including panics and an exhausted budget.
func (h *Handler) IngestEvent(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	status := service.IngestAcceptedWithError

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("Panic while ingesting webhook",
				zap.String("request_id", requestID),
				zap.Any("panic", rec))
			status = service.IngestAcceptedWithError
		}
		render.Status(r, http.StatusOK)
		render.JSON(w, r, api.IngestResponse{Status: api.IngestResponseStatus(status)})
	}()

	budget, maxBody := defaultIngestBudget, int64(defaultIngestMaxBody)
	if h.ingest != nil {
		if h.ingest.BudgetMs > 0 {
			budget = time.Duration(h.ingest.BudgetMs) * time.Millisecond
		}
		if h.ingest.MaxBodyBytes > 0 {
			maxBody = h.ingest.MaxBodyBytes
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), budget)
	defer cancel()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("Webhook body too large",
				zap.String("request_id", requestID),
				zap.Int64("limit", tooLarge.Limit))
			status = service.IngestInvalidPayload
			return
		}
		h.logger.Warn("Failed to read webhook body", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	result := make(chan service.IngestStatus, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				h.logger.Error("Panic in ingest pipeline",
					zap.String("request_id", requestID),
					zap.Any("panic", rec))
				result <- service.IngestAcceptedWithError
			}
		}()
		result <- h.service.Ingest.Ingest(ctx, body)
	}()

	select {
	case status = <-result:
	case <-ctx.Done():
		h.logger.Warn("Ingest budget exhausted",
			zap.String("request_id", requestID),
			zap.Duration("budget", budget))
	}
}

// ProcessQueueRecord implements api.ServerInterface. Only the record id is
// read; the stored row is the source of truth.
func (h *Handler) ProcessQueueRecord(w http.ResponseWriter, r *http.Request) {
	var req api.ProcessQueueRecordJSONRequestBody
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.Record.Id <= 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Body must contain record.id")
		return
	}

	outcome, err := h.service.Queue.Process(r.Context(), req.Record.Id)
	if err != nil {
		h.logger.Error("Failed to process queue record",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Int64("record_id", req.Record.Id),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to process queue record")
		return
	}

	render.JSON(w, r, api.ProcessQueueResponse{Status: api.ProcessQueueResponseStatus(outcome)})
}
