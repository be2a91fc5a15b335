package http

import (
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/pkg/logger"
)

type TimelineHandler struct {
	service domain.TimelineService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewTimelineHandler(service domain.TimelineService, auth *middleware.AuthConfig, logger logger.Logger) *TimelineHandler {
	return &TimelineHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *TimelineHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("/api/timeline.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/timeline.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/timeline.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/timeline.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/timeline.reorder", requireAuth(http.HandlerFunc(h.handleReorder)))
}

func (h *TimelineHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	items, err := h.service.ListTimeline(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "load timeline")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

func (h *TimelineHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.TimelineItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := req.Validate(false)
	if err != nil {
		writeServiceError(w, h.logger, err, "save timeline item")
		return
	}

	created, err := h.service.CreateTimelineItem(r.Context(), item)
	if err != nil {
		writeServiceError(w, h.logger, err, "save timeline item")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"item": created,
	})
}

func (h *TimelineHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.TimelineItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := req.Validate(true)
	if err != nil {
		writeServiceError(w, h.logger, err, "save timeline item")
		return
	}

	updated, err := h.service.UpdateTimelineItem(r.Context(), item)
	if err != nil {
		writeServiceError(w, h.logger, err, "save timeline item")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"item": updated,
	})
}

func (h *TimelineHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.IDRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "delete timeline item")
		return
	}

	if err := h.service.DeleteTimelineItem(r.Context(), req.ID); err != nil {
		writeServiceError(w, h.logger, err, "delete timeline item")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *TimelineHandler) handleReorder(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.ReorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "reorder timeline")
		return
	}

	if err := h.service.ReorderTimeline(r.Context(), req.IDs); err != nil {
		writeServiceError(w, h.logger, err, "reorder timeline")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
