package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/tracing"
)

const maxPreviewBody = 1 << 20

// LinkPreviewService reads the Open Graph tags of a project page so the editor can prefill fields
type LinkPreviewService struct {
	client *http.Client
	logger logger.Logger
}

// NewLinkPreviewService uses a traced client with a short timeout when client is nil
func NewLinkPreviewService(client *http.Client, logger logger.Logger) *LinkPreviewService {
	if client == nil {
		client = tracing.WrapHTTPClient(&http.Client{Timeout: 10 * time.Second})
	}
	return &LinkPreviewService{client: client, logger: logger}
}

func (s *LinkPreviewService) Fetch(ctx context.Context, rawURL string) (*domain.LinkPreview, error) {
	target, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return nil, domain.NewValidationError("url must be a valid http(s) URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PortfolioLinkPreview/1.0")
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WithField("url", target.String()).Warn(fmt.Sprintf("Link preview request failed: %v", err))
		return nil, &domain.ErrUpstreamFailed{Provider: "link preview", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &domain.ErrUpstreamFailed{Provider: "link preview", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPreviewBody))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	preview := &domain.LinkPreview{
		URL:         target.String(),
		Title:       firstNonEmpty(metaContent(doc, "og:title"), strings.TrimSpace(doc.Find("title").First().Text())),
		Description: firstNonEmpty(metaContent(doc, "og:description"), metaContent(doc, "description")),
		ImageURL:    resolveURL(target, metaContent(doc, "og:image")),
		SiteName:    metaContent(doc, "og:site_name"),
	}
	if preview.Title == "" {
		preview.Title = target.Host
	}
	return preview, nil
}

// metaContent matches both property= (Open Graph) and name= (classic) meta tags
func metaContent(doc *goquery.Document, key string) string {
	selector := fmt.Sprintf(`meta[property=%q], meta[name=%q]`, key, key)
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

func resolveURL(base *url.URL, ref string) string {
	if ref == "" {
		return ""
	}
	u, err := base.Parse(ref)
	if err != nil {
		return ""
	}
	return u.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
