package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
)

type SkillService struct {
	repo   domain.SkillRepository
	logger logger.Logger
}

func NewSkillService(repo domain.SkillRepository, logger logger.Logger) *SkillService {
	return &SkillService{repo: repo, logger: logger}
}

func (s *SkillService) ListSkills(ctx context.Context) ([]*domain.Skill, error) {
	skills, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list skills: %v", err))
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

func (s *SkillService) CreateSkill(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	skill.ID = uuid.New().String()

	if skill.OrderIndex == domain.AppendOrder {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count skills: %w", err)
		}
		skill.OrderIndex = count
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		s.logger.WithField("skill_id", skill.ID).Error(fmt.Sprintf("Failed to create skill: %v", err))
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

func (s *SkillService) UpdateSkill(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	if err := s.repo.Update(ctx, skill); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("skill_id", skill.ID).Error(fmt.Sprintf("Failed to update skill: %v", err))
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	updated, err := s.repo.GetByID(ctx, skill.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload skill: %w", err)
	}
	return updated, nil
}

func (s *SkillService) DeleteSkill(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("skill_id", id).Error(fmt.Sprintf("Failed to delete skill: %v", err))
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

func (s *SkillService) ReorderSkills(ctx context.Context, ids []string) error {
	if err := s.repo.Reorder(ctx, ids); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.Error(fmt.Sprintf("Failed to reorder skills: %v", err))
		return fmt.Errorf("failed to reorder skills: %w", err)
	}
	return nil
}
