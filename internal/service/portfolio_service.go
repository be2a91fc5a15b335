package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/cache"
	"github.com/rllL1/portfolio/pkg/liquid"
	"github.com/rllL1/portfolio/pkg/logger"
)

const (
	portfolioCacheKey = "portfolio"
	pageCacheKey      = "page"
)

// PortfolioService assembles the public snapshot. Both the snapshot and the rendered
// page are cached until a content change event calls Invalidate.
type PortfolioService struct {
	projects domain.ProjectRepository
	skills   domain.SkillRepository
	timeline domain.TimelineRepository
	site     domain.SiteRepository
	snapshot cache.Cache[*domain.Portfolio]
	pages    cache.Cache[string]
	renderer *liquid.Renderer
	ttl      time.Duration
	logger   logger.Logger
}

type PortfolioServiceConfig struct {
	Projects domain.ProjectRepository
	Skills   domain.SkillRepository
	Timeline domain.TimelineRepository
	Site     domain.SiteRepository
	Snapshot cache.Cache[*domain.Portfolio]
	Pages    cache.Cache[string]
	TTL      time.Duration
	Logger   logger.Logger
}

func NewPortfolioService(cfg PortfolioServiceConfig) *PortfolioService {
	renderer := liquid.NewRenderer()
	if err := renderer.Register(portfolioPageTemplate, portfolioPage); err != nil {
		panic(fmt.Sprintf("invalid portfolio page template: %v", err))
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &PortfolioService{
		projects: cfg.Projects,
		skills:   cfg.Skills,
		timeline: cfg.Timeline,
		site:     cfg.Site,
		snapshot: cfg.Snapshot,
		pages:    cfg.Pages,
		renderer: renderer,
		ttl:      ttl,
		logger:   cfg.Logger,
	}
}

func (s *PortfolioService) GetPortfolio(ctx context.Context) (*domain.Portfolio, error) {
	return s.snapshot.GetOrSet(portfolioCacheKey, s.ttl, func() (*domain.Portfolio, error) {
		return s.load(ctx)
	})
}

// load reads every public section concurrently; a missing hero or settings row is not an error
func (s *PortfolioService) load(ctx context.Context) (*domain.Portfolio, error) {
	p := &domain.Portfolio{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hero, err := s.site.GetHero(gctx)
		if err != nil && !domain.IsNotFound(err) {
			return err
		}
		p.Hero = hero
		return nil
	})
	g.Go(func() error {
		settings, err := s.site.GetSettings(gctx)
		if err != nil && !domain.IsNotFound(err) {
			return err
		}
		p.Settings = settings
		return nil
	})
	g.Go(func() error {
		skills, err := s.skills.List(gctx)
		if err != nil {
			return err
		}
		p.SkillGroups = domain.GroupSkills(skills)
		return nil
	})
	g.Go(func() error {
		projects, err := s.projects.List(gctx)
		p.Projects = projects
		return err
	})
	g.Go(func() error {
		items, err := s.timeline.List(gctx)
		if err != nil {
			return err
		}
		p.Work, p.Education = domain.SplitTimeline(items)
		return nil
	})
	g.Go(func() error {
		links, err := s.site.ListSocialLinks(gctx)
		p.SocialLinks = links
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to load portfolio: %v", err))
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}
	return p, nil
}

// RenderPage renders the public page from the cached snapshot
func (s *PortfolioService) RenderPage(ctx context.Context) (string, error) {
	return s.pages.GetOrSet(pageCacheKey, s.ttl, func() (string, error) {
		portfolio, err := s.GetPortfolio(ctx)
		if err != nil {
			return "", err
		}

		bindings, err := toBindings(portfolio)
		if err != nil {
			return "", err
		}

		html, err := s.renderer.Render(ctx, portfolioPageTemplate, bindings)
		if err != nil {
			s.logger.Error(fmt.Sprintf("Failed to render portfolio page: %v", err))
			return "", fmt.Errorf("failed to render portfolio page: %w", err)
		}
		return html, nil
	})
}

func (s *PortfolioService) Invalidate() {
	s.snapshot.Delete(portfolioCacheKey)
	s.pages.Delete(pageCacheKey)
}

// HandleChange drops the cached snapshot when a public table changes
func (s *PortfolioService) HandleChange(event domain.ChangeEvent) {
	if !domain.PublicContentTables[event.Table] {
		return
	}
	s.logger.WithField("table", event.Table).Debug("Public content changed, invalidating portfolio cache")
	s.Invalidate()
}

// toBindings exposes the JSON field names to the template
func toBindings(p *domain.Portfolio) (map[string]interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode portfolio: %w", err)
	}
	bindings := map[string]interface{}{}
	if err := json.Unmarshal(raw, &bindings); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio: %w", err)
	}
	return bindings, nil
}
