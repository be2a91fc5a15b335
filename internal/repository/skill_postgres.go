package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rllL1/portfolio/internal/domain"
)

var skillColumns = []string{"id", "name", "category", "icon", "order_index", "created_at", "updated_at"}

type skillRepository struct {
	orderedTable
}

// NewSkillRepository creates a new PostgreSQL skill repository
func NewSkillRepository(db *sql.DB) domain.SkillRepository {
	return &skillRepository{orderedTable{db: db, table: domain.TableSkills, entity: "skill"}}
}

func (r *skillRepository) List(ctx context.Context) ([]*domain.Skill, error) {
	query, args, err := r.selectOrdered(skillColumns...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []*domain.Skill{}
	for rows.Next() {
		skill, err := domain.ScanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}
	return skills, nil
}

func (r *skillRepository) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	query, args, err := psql.Select(skillColumns...).From(r.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	skill, err := domain.ScanSkill(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("skill", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return skill, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	now := time.Now().UTC()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	query, args, err := psql.Insert(r.table).
		Columns(skillColumns...).
		Values(skill.ID, skill.Name, string(skill.Category), skill.Icon, skill.OrderIndex, skill.CreatedAt, skill.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

func (r *skillRepository) Update(ctx context.Context, skill *domain.Skill) error {
	skill.UpdatedAt = time.Now().UTC()

	builder := psql.Update(r.table).
		Set("name", skill.Name).
		Set("category", string(skill.Category)).
		Set("icon", skill.Icon).
		Set("updated_at", skill.UpdatedAt)
	if skill.OrderIndex >= 0 {
		builder = builder.Set("order_index", skill.OrderIndex)
	}

	query, args, err := builder.Where(sq.Eq{"id": skill.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	return requireAffected(result, "skill", skill.ID)
}
