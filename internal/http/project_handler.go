package http

import (
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/pkg/logger"
)

type ProjectHandler struct {
	service domain.ProjectService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewProjectHandler(service domain.ProjectService, auth *middleware.AuthConfig, logger logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *ProjectHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("/api/projects.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/projects.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/projects.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/projects.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/projects.reorder", requireAuth(http.HandlerFunc(h.handleReorder)))
	mux.Handle("/api/projects.preview", requireAuth(http.HandlerFunc(h.handlePreview)))
}

func (h *ProjectHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	projects, err := h.service.ListProjects(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "load projects")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"projects": projects,
	})
}

func (h *ProjectHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.ProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	project, err := req.Validate(false)
	if err != nil {
		writeServiceError(w, h.logger, err, "save project")
		return
	}

	created, err := h.service.CreateProject(r.Context(), project)
	if err != nil {
		writeServiceError(w, h.logger, err, "save project")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"project": created,
	})
}

func (h *ProjectHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.ProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	project, err := req.Validate(true)
	if err != nil {
		writeServiceError(w, h.logger, err, "save project")
		return
	}

	updated, err := h.service.UpdateProject(r.Context(), project)
	if err != nil {
		writeServiceError(w, h.logger, err, "save project")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"project": updated,
	})
}

func (h *ProjectHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.IDRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "delete project")
		return
	}

	if err := h.service.DeleteProject(r.Context(), req.ID); err != nil {
		writeServiceError(w, h.logger, err, "delete project")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *ProjectHandler) handleReorder(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.ReorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "reorder projects")
		return
	}

	if err := h.service.ReorderProjects(r.Context(), req.IDs); err != nil {
		writeServiceError(w, h.logger, err, "reorder projects")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *ProjectHandler) handlePreview(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	target := r.URL.Query().Get("url")
	if target == "" {
		WriteJSONError(w, "Missing url", http.StatusBadRequest)
		return
	}

	preview, err := h.service.PreviewLink(r.Context(), target)
	if err != nil {
		writeServiceError(w, h.logger, err, "preview link")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"preview": preview,
	})
}
