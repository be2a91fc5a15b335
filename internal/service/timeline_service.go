package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
)

type TimelineService struct {
	repo   domain.TimelineRepository
	logger logger.Logger
}

func NewTimelineService(repo domain.TimelineRepository, logger logger.Logger) *TimelineService {
	return &TimelineService{repo: repo, logger: logger}
}

func (s *TimelineService) ListTimeline(ctx context.Context) ([]*domain.TimelineItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list timeline items: %v", err))
		return nil, fmt.Errorf("failed to list timeline items: %w", err)
	}
	return items, nil
}

func (s *TimelineService) CreateTimelineItem(ctx context.Context, item *domain.TimelineItem) (*domain.TimelineItem, error) {
	item.ID = uuid.New().String()

	if item.OrderIndex == domain.AppendOrder {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count timeline items: %w", err)
		}
		item.OrderIndex = count
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.WithField("timeline_item_id", item.ID).Error(fmt.Sprintf("Failed to create timeline item: %v", err))
		return nil, fmt.Errorf("failed to create timeline item: %w", err)
	}
	return item, nil
}

func (s *TimelineService) UpdateTimelineItem(ctx context.Context, item *domain.TimelineItem) (*domain.TimelineItem, error) {
	if err := s.repo.Update(ctx, item); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("timeline_item_id", item.ID).Error(fmt.Sprintf("Failed to update timeline item: %v", err))
		return nil, fmt.Errorf("failed to update timeline item: %w", err)
	}

	updated, err := s.repo.GetByID(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload timeline item: %w", err)
	}
	return updated, nil
}

func (s *TimelineService) DeleteTimelineItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("timeline_item_id", id).Error(fmt.Sprintf("Failed to delete timeline item: %v", err))
		return fmt.Errorf("failed to delete timeline item: %w", err)
	}
	return nil
}

func (s *TimelineService) ReorderTimeline(ctx context.Context, ids []string) error {
	if err := s.repo.Reorder(ctx, ids); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.Error(fmt.Sprintf("Failed to reorder timeline: %v", err))
		return fmt.Errorf("failed to reorder timeline: %w", err)
	}
	return nil
}
