package http

import (
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/pkg/logger"
)

type DashboardHandler struct {
	service domain.DashboardService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewDashboardHandler(service domain.DashboardService, auth *middleware.AuthConfig, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *DashboardHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/dashboard.stats", h.auth.RequireAuth()(http.HandlerFunc(h.handleStats)))
}

func (h *DashboardHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "load dashboard")
		return
	}

	WriteJSON(w, http.StatusOK, stats)
}
