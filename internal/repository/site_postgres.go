package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rllL1/portfolio/internal/domain"
)

var (
	heroColumns = []string{
		"id", "title", "subtitle", "description", "cta_text", "cta_link", "image_url", "badges", "updated_at",
	}
	settingsColumns = []string{
		"id", "site_title", "site_description", "meta_keywords", "footer_text", "resume_pdf_url", "updated_at",
	}
	socialLinkColumns = []string{"id", "platform", "url", "icon", "display_order", "updated_at"}
)

// siteRepository covers the single-row hero and settings tables plus the social links
type siteRepository struct {
	db *sql.DB
}

// NewSiteRepository creates a new PostgreSQL site repository
func NewSiteRepository(db *sql.DB) domain.SiteRepository {
	return &siteRepository{db: db}
}

// GetHero returns the first hero row; the table is expected to hold one
func (r *siteRepository) GetHero(ctx context.Context) (*domain.HeroSection, error) {
	query, args, err := psql.Select(heroColumns...).
		From(domain.TableHeroSection).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	hero, err := domain.ScanHeroSection(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("hero", "")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hero section: %w", err)
	}
	return hero, nil
}

// UpsertHero inserts the hero or replaces the row with the same id.
// An empty id gets a fresh uuid.
func (r *siteRepository) UpsertHero(ctx context.Context, hero *domain.HeroSection) error {
	hero.UpdatedAt = time.Now().UTC()
	if hero.ID == "" {
		hero.ID = uuid.New().String()
	}

	query, args, err := psql.Insert(domain.TableHeroSection).
		Columns(heroColumns...).
		Values(
			hero.ID,
			hero.Title,
			hero.Subtitle,
			hero.Description,
			hero.CTAText,
			hero.CTALink,
			hero.ImageURL,
			hero.Badges,
			hero.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			description = EXCLUDED.description,
			cta_text = EXCLUDED.cta_text,
			cta_link = EXCLUDED.cta_link,
			image_url = EXCLUDED.image_url,
			badges = EXCLUDED.badges,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save hero section: %w", err)
	}
	return nil
}

func (r *siteRepository) GetSettings(ctx context.Context) (*domain.SiteSettings, error) {
	query, args, err := psql.Select(settingsColumns...).
		From(domain.TableSiteSettings).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	settings, err := domain.ScanSiteSettings(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("site settings", "")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	return settings, nil
}

func (r *siteRepository) UpdateSettings(ctx context.Context, settings *domain.SiteSettings) error {
	settings.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Update(domain.TableSiteSettings).
		Set("site_title", settings.SiteTitle).
		Set("site_description", settings.SiteDescription).
		Set("meta_keywords", settings.MetaKeywords).
		Set("footer_text", settings.FooterText).
		Set("resume_pdf_url", settings.ResumePDFURL).
		Set("updated_at", settings.UpdatedAt).
		Where(sq.Eq{"id": settings.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update site settings: %w", err)
	}
	return requireAffected(result, "site settings", settings.ID)
}

func (r *siteRepository) ListSocialLinks(ctx context.Context) ([]*domain.SocialLink, error) {
	query, args, err := psql.Select(socialLinkColumns...).
		From(domain.TableSocialLinks).
		OrderBy("display_order ASC", "platform ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	defer rows.Close()

	links := []*domain.SocialLink{}
	for rows.Next() {
		link, err := domain.ScanSocialLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan social link: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating social link rows: %w", err)
	}
	return links, nil
}

func (r *siteRepository) UpdateSocialLinkURL(ctx context.Context, id, url string) error {
	query, args, err := psql.Update(domain.TableSocialLinks).
		Set("url", url).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update social link: %w", err)
	}
	return requireAffected(result, "social link", id)
}
