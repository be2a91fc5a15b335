package http

import (
	"errors"
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/ratelimiter"
)

// ChatHandler proxies visitor questions to the assistant
type ChatHandler struct {
	assistant   domain.AssistantService
	rateLimiter *ratelimiter.RateLimiter
	logger      logger.Logger
}

func NewChatHandler(assistant domain.AssistantService, rateLimiter *ratelimiter.RateLimiter, logger logger.Logger) *ChatHandler {
	return &ChatHandler{
		assistant:   assistant,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	limit := middleware.RateLimit(h.rateLimiter, ratelimiter.NamespaceChat, h.logger)
	mux.Handle("/api/chat", limit(http.HandlerFunc(h.handleChat)))
}

func (h *ChatHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.AssistantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	message, err := req.Validate()
	if err != nil {
		writeServiceError(w, h.logger, err, "process chat message")
		return
	}

	reply, err := h.assistant.Ask(r.Context(), message)
	if err != nil {
		var upstream *domain.ErrUpstreamFailed
		switch {
		case errors.Is(err, domain.ErrUpstreamUnavailable):
			h.logger.Error("Chat requested but no text generation API key is configured")
			WriteJSONError(w, "API key not configured", http.StatusInternalServerError)
		case errors.As(err, &upstream):
			WriteJSONError(w, "Failed to process chat message", http.StatusBadGateway)
		default:
			writeServiceError(w, h.logger, err, "process chat message")
		}
		return
	}

	WriteJSON(w, http.StatusOK, domain.AssistantResponse{Reply: reply})
}
