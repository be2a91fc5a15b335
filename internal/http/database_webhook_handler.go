package http

import (
	"io"
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/tracing"
)

// DatabaseWebhookHandler receives hosted database webhooks and feeds them into the change hub
type DatabaseWebhookHandler struct {
	publisher domain.ChangePublisher
	secret    string
	logger    logger.Logger
}

func NewDatabaseWebhookHandler(publisher domain.ChangePublisher, secret string, logger logger.Logger) *DatabaseWebhookHandler {
	return &DatabaseWebhookHandler{
		publisher: publisher,
		secret:    secret,
		logger:    logger,
	}
}

func (h *DatabaseWebhookHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/webhooks/supabase/database", h.handleDatabaseWebhook)
}

func (h *DatabaseWebhookHandler) handleDatabaseWebhook(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	if h.secret == "" {
		WriteJSONError(w, "Database webhook is not configured", http.StatusServiceUnavailable)
		return
	}

	if r.Header.Get("webhook-id") == "" || r.Header.Get("webhook-timestamp") == "" || r.Header.Get("webhook-signature") == "" {
		WriteJSONError(w, "Missing required webhook headers", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to read webhook request body")
		WriteJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	if err := domain.VerifyDatabaseWebhook(body, r.Header, h.secret); err != nil {
		h.logger.WithField("error", err.Error()).Warn("Rejected database webhook")
		WriteJSONError(w, "Invalid webhook signature", http.StatusUnauthorized)
		return
	}

	event, err := domain.ParseChangeEvent(body)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !domain.IsWatchedTable(event.Table) {
		h.logger.WithField("table", event.Table).Debug("Ignoring webhook for unwatched table")
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"ignored": true,
		})
		return
	}

	tracing.RecordChangeEvent(r.Context(), event.Table, "webhook")
	h.publisher.Publish(r.Context(), *event)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
