package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
)

type ProjectService struct {
	repo    domain.ProjectRepository
	preview *LinkPreviewService
	logger  logger.Logger
}

func NewProjectService(repo domain.ProjectRepository, preview *LinkPreviewService, logger logger.Logger) *ProjectService {
	return &ProjectService{
		repo:    repo,
		preview: preview,
		logger:  logger,
	}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list projects: %v", err))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateProject appends the project to the end of the grid unless a position was given
func (s *ProjectService) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	project.ID = uuid.New().String()

	if project.OrderIndex == domain.AppendOrder {
		count, err := s.repo.Count(ctx)
		if err != nil {
			s.logger.Error(fmt.Sprintf("Failed to count projects: %v", err))
			return nil, fmt.Errorf("failed to count projects: %w", err)
		}
		project.OrderIndex = count
	}

	if err := s.repo.Create(ctx, project); err != nil {
		s.logger.WithField("project_id", project.ID).Error(fmt.Sprintf("Failed to create project: %v", err))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if err := s.repo.Update(ctx, project); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("project_id", project.ID).Error(fmt.Sprintf("Failed to update project: %v", err))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	updated, err := s.repo.GetByID(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}
	return updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("project_id", id).Error(fmt.Sprintf("Failed to delete project: %v", err))
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) ReorderProjects(ctx context.Context, ids []string) error {
	if err := s.repo.Reorder(ctx, ids); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.Error(fmt.Sprintf("Failed to reorder projects: %v", err))
		return fmt.Errorf("failed to reorder projects: %w", err)
	}
	return nil
}

func (s *ProjectService) PreviewLink(ctx context.Context, rawURL string) (*domain.LinkPreview, error) {
	return s.preview.Fetch(ctx, rawURL)
}
