package domain

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
)

//go:generate mockgen -destination mocks/mock_media_service.go -package mocks github.com/rllL1/portfolio/internal/domain MediaService

// MaxMediaSize is the upload limit for images
const MaxMediaSize = 5 << 20

// AllowedMediaTypes maps accepted content types to file extensions
var AllowedMediaTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

var folderPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,31}$`)

// MediaUpload describes one file received by media.upload
type MediaUpload struct {
	Folder      string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (u *MediaUpload) Validate() error {
	if u.Body == nil {
		return NewValidationError("file is required")
	}
	if u.Size <= 0 {
		return NewValidationError("file is empty")
	}
	if u.Size > MaxMediaSize {
		return NewValidationError(fmt.Sprintf("file exceeds the %d MB limit", MaxMediaSize>>20))
	}

	ct := strings.ToLower(strings.TrimSpace(strings.Split(u.ContentType, ";")[0]))
	if _, ok := AllowedMediaTypes[ct]; !ok {
		return NewValidationError(fmt.Sprintf("unsupported file type: %s", u.ContentType))
	}
	u.ContentType = ct

	u.Folder = strings.ToLower(strings.TrimSpace(u.Folder))
	if u.Folder == "" {
		u.Folder = "uploads"
	}
	if !folderPattern.MatchString(u.Folder) {
		return NewValidationError("folder must be lowercase letters, digits, '-' or '_'")
	}

	u.FileName = path.Base(strings.ReplaceAll(u.FileName, "\\", "/"))
	return nil
}

// Extension returns the canonical extension of the validated content type
func (u *MediaUpload) Extension() string {
	return AllowedMediaTypes[u.ContentType]
}

type MediaObject struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type MediaService interface {
	Upload(ctx context.Context, upload *MediaUpload) (*MediaObject, error)
}
