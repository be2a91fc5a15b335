package http

import (
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
)

// PortfolioHandler serves the public snapshot and the server-rendered page
type PortfolioHandler struct {
	service domain.PortfolioService
	logger  logger.Logger
}

func NewPortfolioHandler(service domain.PortfolioService, logger logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PortfolioHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/portfolio.get", h.handleGet)
	mux.HandleFunc("/", h.handlePage)
}

func (h *PortfolioHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	portfolio, err := h.service.GetPortfolio(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "load portfolio")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	WriteJSON(w, http.StatusOK, portfolio)
}

// handlePage owns the mux fallback, so anything but the root path is a 404
func (h *PortfolioHandler) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteJSONError(w, "Not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, err := h.service.RenderPage(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to render portfolio page")
		http.Error(w, "Portfolio is temporarily unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write([]byte(page))
	}
}
