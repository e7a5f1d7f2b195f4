package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/api"
	"github.com/ppopeskul/convoflow/internal/middleware"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
)

// ListDeadLetters implements api.ServerInterface.
func (h *Handler) ListDeadLetters(w http.ResponseWriter, r *http.Request, params api.ListDeadLettersParams) {
	page, limit := pagination(params.Page, params.Limit)

	result, err := h.service.Queue.ListDeadLetters(r.Context(), page, limit)
	if err != nil {
		h.logger.Error("Failed to list dead letters",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to retrieve dead letters")
		return
	}

	items := make([]api.DeadLetter, 0, len(result.Items))
	for _, dl := range result.Items {
		items = append(items, toAPIDeadLetter(dl))
	}

	render.JSON(w, r, api.DeadLetterListResponse{
		DeadLetters: items,
		Pagination: api.Pagination{
			CurrentPage:  result.Page,
			ItemsPerPage: result.Limit,
			TotalItems:   result.TotalItems,
			TotalPages:   result.TotalPages,
		},
	})
}

func toAPIDeadLetter(dl *models.DeadLetterEntry) api.DeadLetter {
	history := make([]api.ErrorEntry, 0, len(dl.ErrorHistory))
	for _, e := range dl.ErrorHistory {
		history = append(history, api.ErrorEntry{Error: e.Error, Time: e.Time})
	}

	var payload map[string]interface{}
	if len(dl.Payload) > 0 {
		_ = json.Unmarshal(dl.Payload, &payload)
	}

	return api.DeadLetter{
		Id:               dl.ID,
		OriginalRecordId: dl.OriginalRecordID,
		TenantId:         dl.TenantID,
		EventKind:        string(dl.EventKind),
		Payload:          payload,
		LastError:        dl.LastError,
		ErrorHistory:     history,
		CreatedAt:        dl.CreatedAt,
	}
}

// ReplayDeadLetter implements api.ServerInterface. The dead letter itself is
// left untouched; only the original record goes back to pending.
func (h *Handler) ReplayDeadLetter(w http.ResponseWriter, r *http.Request, id int64) {
	recordID, err := h.service.Queue.Replay(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Dead letter not found")
		return
	case errors.Is(err, repository.ErrConflict):
		h.sendError(w, r, http.StatusConflict, errorCodeConflict, "Original record is not dead-lettered")
		return
	case err != nil:
		h.logger.Error("Failed to replay dead letter",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Int64("dead_letter_id", id),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to replay dead letter")
		return
	}

	render.JSON(w, r, api.ReplayResponse{RecordId: recordID, Status: api.Requeued})
}

// SaveWorkflow implements api.ServerInterface.
func (h *Handler) SaveWorkflow(w http.ResponseWriter, r *http.Request) {
	var wf models.Workflow
	if err := render.DecodeJSON(r.Body, &wf); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, err.Error())
		return
	}

	saved, err := h.service.Workflows.Save(r.Context(), &wf)
	switch {
	case errors.Is(err, models.ErrInvalidWorkflow):
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, err.Error())
		return
	case errors.Is(err, repository.ErrDuplicate):
		h.sendError(w, r, http.StatusConflict, errorCodeConflict, "Workflow id belongs to another tenant")
		return
	case err != nil:
		h.logger.Error("Failed to save workflow",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("workflow_id", wf.ID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to save workflow")
		return
	}

	render.JSON(w, r, saved)
}

// GetWorkflow implements api.ServerInterface.
func (h *Handler) GetWorkflow(w http.ResponseWriter, r *http.Request, id string, params api.GetWorkflowParams) {
	wf, err := h.service.Workflows.Get(r.Context(), params.TenantId, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, "Workflow not found")
		return
	case err != nil:
		h.logger.Error("Failed to get workflow",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("workflow_id", id),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to retrieve workflow")
		return
	}

	render.JSON(w, r, wf)
}
