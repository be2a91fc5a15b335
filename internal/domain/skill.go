package domain

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

//go:generate mockgen -destination mocks/mock_skill_service.go -package mocks github.com/rllL1/portfolio/internal/domain SkillService
//go:generate mockgen -destination mocks/mock_skill_repository.go -package mocks github.com/rllL1/portfolio/internal/domain SkillRepository

// SkillCategory groups skills on the public page
type SkillCategory string

const (
	SkillCategoryLanguages  SkillCategory = "Languages"
	SkillCategoryFrameworks SkillCategory = "Frameworks"
	SkillCategoryTools      SkillCategory = "Tools"
	SkillCategoryDesign     SkillCategory = "Design"
)

// SkillCategories lists the categories in display order
var SkillCategories = []SkillCategory{
	SkillCategoryLanguages,
	SkillCategoryFrameworks,
	SkillCategoryTools,
	SkillCategoryDesign,
}

// ParseSkillCategory matches case-insensitively and returns the canonical value
func ParseSkillCategory(s string) (SkillCategory, error) {
	for _, c := range SkillCategories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", NewValidationError(fmt.Sprintf("invalid skill category: %q", s))
}

type Skill struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Category   SkillCategory `json:"category"`
	Icon       *string       `json:"icon"`
	OrderIndex int           `json:"order_index"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// ScanSkill scans a skill and rejects rows with an unknown category
func ScanSkill(scanner Scanner) (*Skill, error) {
	var (
		s        Skill
		category string
		icon     sql.NullString
	)
	if err := scanner.Scan(
		&s.ID,
		&s.Name,
		&category,
		&icon,
		&s.OrderIndex,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c, err := ParseSkillCategory(category)
	if err != nil {
		return nil, fmt.Errorf("skill %s: %w", s.ID, err)
	}
	s.Category = c
	s.Icon = fromNullString(icon)
	return &s, nil
}

type SkillRequest struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Icon       *string `json:"icon"`
	OrderIndex *int    `json:"order_index,omitempty"`
}

func (r *SkillRequest) Validate(requireID bool) (*Skill, error) {
	r.ID = strings.TrimSpace(r.ID)
	if requireID && r.ID == "" {
		return nil, NewValidationError("id is required")
	}

	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, NewValidationError("name is required")
	}
	if utf8.RuneCountInString(name) > 100 {
		return nil, NewValidationError("name length must be between 1 and 100")
	}

	category, err := ParseSkillCategory(r.Category)
	if err != nil {
		return nil, err
	}

	if r.OrderIndex != nil && *r.OrderIndex < 0 {
		return nil, NewValidationError("order_index must be zero or greater")
	}

	skill := &Skill{
		ID:         r.ID,
		Name:       name,
		Category:   category,
		Icon:       OptionalString(r.Icon),
		OrderIndex: AppendOrder,
	}
	if r.OrderIndex != nil {
		skill.OrderIndex = *r.OrderIndex
	}
	return skill, nil
}

type SkillService interface {
	ListSkills(ctx context.Context) ([]*Skill, error)
	CreateSkill(ctx context.Context, skill *Skill) (*Skill, error)
	UpdateSkill(ctx context.Context, skill *Skill) (*Skill, error)
	DeleteSkill(ctx context.Context, id string) error
	ReorderSkills(ctx context.Context, ids []string) error
}

type SkillRepository interface {
	List(ctx context.Context) ([]*Skill, error)
	GetByID(ctx context.Context, id string) (*Skill, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}
