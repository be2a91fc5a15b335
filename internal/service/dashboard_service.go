package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
)

const recentMessagesLimit = 3

type DashboardService struct {
	projects domain.ProjectRepository
	skills   domain.SkillRepository
	messages domain.ContactMessageRepository
	chat     domain.ChatMessageRepository
	logger   logger.Logger
}

func NewDashboardService(
	projects domain.ProjectRepository,
	skills domain.SkillRepository,
	messages domain.ContactMessageRepository,
	chat domain.ChatMessageRepository,
	logger logger.Logger,
) *DashboardService {
	return &DashboardService{
		projects: projects,
		skills:   skills,
		messages: messages,
		chat:     chat,
		logger:   logger,
	}
}

// GetStats runs the overview counts concurrently; the first failure cancels the rest
func (s *DashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.projects.Count(gctx)
		stats.Projects = n
		return err
	})
	g.Go(func() error {
		n, err := s.skills.Count(gctx)
		stats.Skills = n
		return err
	})
	g.Go(func() error {
		n, err := s.messages.Count(gctx, false)
		stats.Messages = n
		return err
	})
	g.Go(func() error {
		n, err := s.messages.Count(gctx, true)
		stats.UnreadMessages = n
		return err
	})
	g.Go(func() error {
		n, err := s.chat.Count(gctx)
		stats.ChatMessages = n
		return err
	})
	g.Go(func() error {
		recent, err := s.messages.List(gctx, recentMessagesLimit)
		stats.RecentMessages = recent
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to load dashboard stats: %v", err))
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	if stats.RecentMessages == nil {
		stats.RecentMessages = []*domain.ContactMessage{}
	}
	return stats, nil
}
