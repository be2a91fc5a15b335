package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/pkg/logger"
)

// multipartOverhead leaves room for the form boundaries and the folder field
const multipartOverhead = 1 << 20

type MediaHandler struct {
	service domain.MediaService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewMediaHandler(service domain.MediaService, auth *middleware.AuthConfig, logger logger.Logger) *MediaHandler {
	return &MediaHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *MediaHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/media.upload", h.auth.RequireAuth()(http.HandlerFunc(h.handleUpload)))
}

func (h *MediaHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxMediaSize+multipartOverhead)
	if err := r.ParseMultipartForm(domain.MaxMediaSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, "File exceeds the 5 MB limit", http.StatusRequestEntityTooLarge)
			return
		}
		WriteJSONError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteJSONError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		sniff := make([]byte, 512)
		n, _ := io.ReadFull(file, sniff)
		contentType = http.DetectContentType(sniff[:n])
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			writeServiceError(w, h.logger, err, "upload media")
			return
		}
	}

	upload := &domain.MediaUpload{
		Folder:      r.FormValue("folder"),
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	}
	if err := upload.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "upload media")
		return
	}

	object, err := h.service.Upload(r.Context(), upload)
	if err != nil {
		writeServiceError(w, h.logger, err, "upload media")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"media": object,
	})
}
