package service

import (
	"context"
	"fmt"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
)

// SiteService edits the hero banner, the site settings and the social links
type SiteService struct {
	repo   domain.SiteRepository
	logger logger.Logger
}

func NewSiteService(repo domain.SiteRepository, logger logger.Logger) *SiteService {
	return &SiteService{repo: repo, logger: logger}
}

func (s *SiteService) GetHero(ctx context.Context) (*domain.HeroSection, error) {
	hero, err := s.repo.GetHero(ctx)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error(fmt.Sprintf("Failed to get hero section: %v", err))
		return nil, fmt.Errorf("failed to get hero section: %w", err)
	}
	return hero, nil
}

func (s *SiteService) UpsertHero(ctx context.Context, hero *domain.HeroSection) (*domain.HeroSection, error) {
	if err := s.repo.UpsertHero(ctx, hero); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("hero_id", hero.ID).Error(fmt.Sprintf("Failed to save hero section: %v", err))
		return nil, fmt.Errorf("failed to save hero section: %w", err)
	}
	return hero, nil
}

func (s *SiteService) GetSettings(ctx context.Context) (*domain.SiteSettings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error(fmt.Sprintf("Failed to get site settings: %v", err))
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	return settings, nil
}

func (s *SiteService) UpdateSettings(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	if err := s.repo.UpdateSettings(ctx, settings); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("settings_id", settings.ID).Error(fmt.Sprintf("Failed to update site settings: %v", err))
		return nil, fmt.Errorf("failed to update site settings: %w", err)
	}
	return settings, nil
}

func (s *SiteService) ListSocialLinks(ctx context.Context) ([]*domain.SocialLink, error) {
	links, err := s.repo.ListSocialLinks(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list social links: %v", err))
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	return links, nil
}

func (s *SiteService) UpdateSocialLink(ctx context.Context, id, url string) error {
	if err := s.repo.UpdateSocialLinkURL(ctx, id, url); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("social_link_id", id).Error(fmt.Sprintf("Failed to update social link: %v", err))
		return fmt.Errorf("failed to update social link: %w", err)
	}
	return nil
}
