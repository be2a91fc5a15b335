package http

import (
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/pkg/logger"
)

type SkillHandler struct {
	service domain.SkillService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewSkillHandler(service domain.SkillService, auth *middleware.AuthConfig, logger logger.Logger) *SkillHandler {
	return &SkillHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *SkillHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("/api/skills.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/skills.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/skills.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/skills.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/skills.reorder", requireAuth(http.HandlerFunc(h.handleReorder)))
}

func (h *SkillHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	skills, err := h.service.ListSkills(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "load skills")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"skills": skills,
	})
}

func (h *SkillHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.SkillRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	skill, err := req.Validate(false)
	if err != nil {
		writeServiceError(w, h.logger, err, "save skill")
		return
	}

	created, err := h.service.CreateSkill(r.Context(), skill)
	if err != nil {
		writeServiceError(w, h.logger, err, "save skill")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"skill": created,
	})
}

func (h *SkillHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.SkillRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	skill, err := req.Validate(true)
	if err != nil {
		writeServiceError(w, h.logger, err, "save skill")
		return
	}

	updated, err := h.service.UpdateSkill(r.Context(), skill)
	if err != nil {
		writeServiceError(w, h.logger, err, "save skill")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"skill": updated,
	})
}

func (h *SkillHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.IDRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "delete skill")
		return
	}

	if err := h.service.DeleteSkill(r.Context(), req.ID); err != nil {
		writeServiceError(w, h.logger, err, "delete skill")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *SkillHandler) handleReorder(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.ReorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "reorder skills")
		return
	}

	if err := h.service.ReorderSkills(r.Context(), req.IDs); err != nil {
		writeServiceError(w, h.logger, err, "reorder skills")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
