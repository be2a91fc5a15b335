package http

import (
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/ratelimiter"
)

// LiveChatHandler serves the floating chat widget and the admin chat screen
type LiveChatHandler struct {
	service     domain.LiveChatService
	auth        *middleware.AuthConfig
	rateLimiter *ratelimiter.RateLimiter
	logger      logger.Logger
}

func NewLiveChatHandler(service domain.LiveChatService, auth *middleware.AuthConfig, rateLimiter *ratelimiter.RateLimiter, logger logger.Logger) *LiveChatHandler {
	return &LiveChatHandler{
		service:     service,
		auth:        auth,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

func (h *LiveChatHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()
	limit := middleware.RateLimit(h.rateLimiter, ratelimiter.NamespaceLiveChat, h.logger)

	mux.Handle("/api/livechat.send", limit(http.HandlerFunc(h.handleSend)))
	mux.HandleFunc("/api/livechat.status", h.handleStatus)
	mux.Handle("/api/livechat.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/livechat.reply", requireAuth(http.HandlerFunc(h.handleReply)))
	mux.Handle("/api/livechat.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *LiveChatHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.SendLiveChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := req.Validate()
	if err != nil {
		writeServiceError(w, h.logger, err, "send message")
		return
	}

	result, err := h.service.Send(r.Context(), msg)
	if err != nil {
		writeServiceError(w, h.logger, err, "send message")
		return
	}

	WriteJSON(w, http.StatusCreated, result)
}

func (h *LiveChatHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"admin_online": h.service.AdminOnline(r.Context()),
	})
}

func (h *LiveChatHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	messages, err := h.service.ListMessages(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "load chat messages")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

func (h *LiveChatHandler) handleReply(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.AdminReplyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := req.Validate()
	if err != nil {
		writeServiceError(w, h.logger, err, "send reply")
		return
	}

	saved, err := h.service.Reply(r.Context(), msg)
	if err != nil {
		writeServiceError(w, h.logger, err, "send reply")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": saved,
	})
}

func (h *LiveChatHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.IDRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "delete chat message")
		return
	}

	if err := h.service.DeleteMessage(r.Context(), req.ID); err != nil {
		writeServiceError(w, h.logger, err, "delete chat message")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
