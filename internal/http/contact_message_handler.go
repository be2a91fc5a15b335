package http

import (
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/ratelimiter"
)

// ContactMessageHandler takes public contact form submissions and serves the admin inbox
type ContactMessageHandler struct {
	service     domain.ContactMessageService
	auth        *middleware.AuthConfig
	rateLimiter *ratelimiter.RateLimiter
	logger      logger.Logger
}

func NewContactMessageHandler(service domain.ContactMessageService, auth *middleware.AuthConfig, rateLimiter *ratelimiter.RateLimiter, logger logger.Logger) *ContactMessageHandler {
	return &ContactMessageHandler{
		service:     service,
		auth:        auth,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

func (h *ContactMessageHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()
	limit := middleware.RateLimit(h.rateLimiter, ratelimiter.NamespaceContact, h.logger)

	mux.Handle("/api/contact.submit", limit(http.HandlerFunc(h.handleSubmit)))
	mux.Handle("/api/messages.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/messages.mark_read", requireAuth(http.HandlerFunc(h.handleMarkRead)))
	mux.Handle("/api/messages.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *ContactMessageHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.SubmitContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := req.Validate()
	if err != nil {
		writeServiceError(w, h.logger, err, "send message")
		return
	}

	saved, err := h.service.Submit(r.Context(), msg)
	if err != nil {
		writeServiceError(w, h.logger, err, "send message")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      saved.ID,
	})
}

func (h *ContactMessageHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	messages, err := h.service.ListMessages(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "load messages")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

func (h *ContactMessageHandler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.IDRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "update message")
		return
	}

	if err := h.service.MarkRead(r.Context(), req.ID); err != nil {
		writeServiceError(w, h.logger, err, "update message")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *ContactMessageHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.IDRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "delete message")
		return
	}

	if err := h.service.DeleteMessage(r.Context(), req.ID); err != nil {
		writeServiceError(w, h.logger, err, "delete message")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
