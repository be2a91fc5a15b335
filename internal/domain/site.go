package domain

import (
	"context"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_site_service.go -package mocks github.com/rllL1/portfolio/internal/domain SiteService
//go:generate mockgen -destination mocks/mock_site_repository.go -package mocks github.com/rllL1/portfolio/internal/domain SiteRepository

// HeroSection is the single-row banner at the top of the public page
type HeroSection struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Description string     `json:"description"`
	CTAText     string     `json:"cta_text"`
	CTALink     string     `json:"cta_link"`
	ImageURL    string     `json:"image_url"`
	Badges      StringList `json:"badges"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ScanHeroSection(scanner Scanner) (*HeroSection, error) {
	var h HeroSection
	if err := scanner.Scan(
		&h.ID,
		&h.Title,
		&h.Subtitle,
		&h.Description,
		&h.CTAText,
		&h.CTALink,
		&h.ImageURL,
		&h.Badges,
		&h.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if h.Badges == nil {
		h.Badges = StringList{}
	}
	return &h, nil
}

// Validate is used by hero.upsert; an empty id means insert
func (h *HeroSection) Validate() error {
	h.Title = strings.TrimSpace(h.Title)
	if h.Title == "" {
		return NewValidationError("title is required")
	}
	if h.CTALink != "" {
		link := h.CTALink
		if err := validateOptionalURL("cta_link", &link); err != nil && !strings.HasPrefix(link, "#") {
			return err
		}
	}
	if h.ImageURL != "" {
		img := h.ImageURL
		if err := validateOptionalURL("image_url", &img); err != nil {
			return err
		}
	}
	if h.Badges == nil {
		h.Badges = StringList{}
	}
	return nil
}

type SiteSettings struct {
	ID              string    `json:"id"`
	SiteTitle       string    `json:"site_title"`
	SiteDescription string    `json:"site_description"`
	MetaKeywords    string    `json:"meta_keywords"`
	FooterText      string    `json:"footer_text"`
	ResumePDFURL    string    `json:"resume_pdf_url"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ScanSiteSettings(scanner Scanner) (*SiteSettings, error) {
	var s SiteSettings
	if err := scanner.Scan(
		&s.ID,
		&s.SiteTitle,
		&s.SiteDescription,
		&s.MetaKeywords,
		&s.FooterText,
		&s.ResumePDFURL,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *SiteSettings) Validate() error {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return NewValidationError("id is required")
	}
	s.SiteTitle = strings.TrimSpace(s.SiteTitle)
	if s.SiteTitle == "" {
		return NewValidationError("site_title is required")
	}
	if s.ResumePDFURL != "" {
		resume := s.ResumePDFURL
		if err := validateOptionalURL("resume_pdf_url", &resume); err != nil {
			return err
		}
	}
	return nil
}

type SocialLink struct {
	ID           string    `json:"id"`
	Platform     string    `json:"platform"`
	URL          string    `json:"url"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `json:"display_order"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ScanSocialLink(scanner Scanner) (*SocialLink, error) {
	var l SocialLink
	if err := scanner.Scan(
		&l.ID,
		&l.Platform,
		&l.URL,
		&l.Icon,
		&l.DisplayOrder,
		&l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateSocialLinkRequest only edits the url; platforms are seeded
type UpdateSocialLinkRequest struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (r *UpdateSocialLinkRequest) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		return NewValidationError("id is required")
	}
	r.URL = strings.TrimSpace(r.URL)
	if r.URL == "" {
		return nil
	}
	if strings.HasPrefix(r.URL, "mailto:") {
		return nil
	}
	url := r.URL
	return validateOptionalURL("url", &url)
}

type SiteService interface {
	GetHero(ctx context.Context) (*HeroSection, error)
	UpsertHero(ctx context.Context, hero *HeroSection) (*HeroSection, error)
	GetSettings(ctx context.Context) (*SiteSettings, error)
	UpdateSettings(ctx context.Context, settings *SiteSettings) (*SiteSettings, error)
	ListSocialLinks(ctx context.Context) ([]*SocialLink, error)
	UpdateSocialLink(ctx context.Context, id, url string) error
}

type SiteRepository interface {
	GetHero(ctx context.Context) (*HeroSection, error)
	UpsertHero(ctx context.Context, hero *HeroSection) error
	GetSettings(ctx context.Context) (*SiteSettings, error)
	UpdateSettings(ctx context.Context, settings *SiteSettings) error
	ListSocialLinks(ctx context.Context) ([]*SocialLink, error)
	UpdateSocialLinkURL(ctx context.Context, id, url string) error
}
