package http

import (
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/pkg/logger"
)

// SiteHandler serves the single-row hero and settings records and the social links
type SiteHandler struct {
	service domain.SiteService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewSiteHandler(service domain.SiteService, auth *middleware.AuthConfig, logger logger.Logger) *SiteHandler {
	return &SiteHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *SiteHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("/api/hero.get", requireAuth(http.HandlerFunc(h.handleGetHero)))
	mux.Handle("/api/hero.upsert", requireAuth(http.HandlerFunc(h.handleUpsertHero)))
	mux.Handle("/api/settings.get", requireAuth(http.HandlerFunc(h.handleGetSettings)))
	mux.Handle("/api/settings.update", requireAuth(http.HandlerFunc(h.handleUpdateSettings)))
	mux.Handle("/api/social_links.list", requireAuth(http.HandlerFunc(h.handleListSocialLinks)))
	mux.Handle("/api/social_links.update", requireAuth(http.HandlerFunc(h.handleUpdateSocialLink)))
}

func (h *SiteHandler) handleGetHero(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	hero, err := h.service.GetHero(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "load hero")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"hero": hero,
	})
}

func (h *SiteHandler) handleUpsertHero(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var hero domain.HeroSection
	if err := decodeJSON(w, r, &hero); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := hero.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "save hero")
		return
	}

	saved, err := h.service.UpsertHero(r.Context(), &hero)
	if err != nil {
		writeServiceError(w, h.logger, err, "save hero")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"hero": saved,
	})
}

func (h *SiteHandler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "load settings")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"settings": settings,
	})
}

func (h *SiteHandler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var settings domain.SiteSettings
	if err := decodeJSON(w, r, &settings); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := settings.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "save settings")
		return
	}

	saved, err := h.service.UpdateSettings(r.Context(), &settings)
	if err != nil {
		writeServiceError(w, h.logger, err, "save settings")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"settings": saved,
	})
}

func (h *SiteHandler) handleListSocialLinks(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	links, err := h.service.ListSocialLinks(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "load social links")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"social_links": links,
	})
}

func (h *SiteHandler) handleUpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.UpdateSocialLinkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "save social link")
		return
	}

	if err := h.service.UpdateSocialLink(r.Context(), req.ID, req.URL); err != nil {
		writeServiceError(w, h.logger, err, "save social link")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
