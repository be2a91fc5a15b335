package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/internal/service/realtime"
	"github.com/rllL1/portfolio/pkg/logger"
)

const defaultKeepAlive = 30 * time.Second

// ChangeSubscriber is implemented by realtime.Hub
type ChangeSubscriber interface {
	Subscribe(table string) *realtime.Subscription
	Unsubscribe(sub *realtime.Subscription)
}

// RealtimeHandler streams database change events to the admin dashboard over SSE
type RealtimeHandler struct {
	hub       ChangeSubscriber
	auth      *middleware.AuthConfig
	keepAlive time.Duration
	logger    logger.Logger
}

func NewRealtimeHandler(hub ChangeSubscriber, auth *middleware.AuthConfig, logger logger.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub:       hub,
		auth:      auth,
		keepAlive: defaultKeepAlive,
		logger:    logger,
	}
}

func (h *RealtimeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/realtime.subscribe", h.auth.RequireAuth()(http.HandlerFunc(h.handleSubscribe)))
}

func (h *RealtimeHandler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	table := strings.TrimSpace(r.URL.Query().Get("table"))
	if table != "" && !domain.IsWatchedTable(table) {
		WriteJSONError(w, fmt.Sprintf("Unknown table: %s", table), http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteJSONError(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	sub := h.hub.Subscribe(table)
	defer h.hub.Unsubscribe(sub)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "event: ready\ndata: {\"subscriber_id\":%q}\n\n", sub.ID)
	flusher.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case event, ok := <-sub.Events:
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				h.logger.WithField("error", err.Error()).Error("Failed to encode change event")
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", strings.ToLower(string(event.Type)), data)
			flusher.Flush()

		case <-ticker.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
