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

var projectColumns = []string{
	"id", "title", "description", "tech_stack", "github_url", "live_url", "image_url",
	"order_index", "created_at", "updated_at",
}

type projectRepository struct {
	orderedTable
}

// NewProjectRepository creates a new PostgreSQL project repository
func NewProjectRepository(db *sql.DB) domain.ProjectRepository {
	return &projectRepository{orderedTable{db: db, table: domain.TableProjects, entity: "project"}}
}

func (r *projectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	query, args, err := r.selectOrdered(projectColumns...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		project, err := domain.ScanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query, args, err := psql.Select(projectColumns...).
		From(r.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	project, err := domain.ScanProject(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("project", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	query, args, err := psql.Insert(r.table).
		Columns(projectColumns...).
		Values(
			project.ID,
			project.Title,
			nullableString(project.Description),
			project.TechStack,
			project.GithubURL,
			project.LiveURL,
			project.ImageURL,
			project.OrderIndex,
			project.CreatedAt,
			project.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update replaces the editable fields; a negative OrderIndex keeps the stored position
func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	project.UpdatedAt = time.Now().UTC()

	builder := psql.Update(r.table).
		Set("title", project.Title).
		Set("description", nullableString(project.Description)).
		Set("tech_stack", project.TechStack).
		Set("github_url", project.GithubURL).
		Set("live_url", project.LiveURL).
		Set("image_url", project.ImageURL).
		Set("updated_at", project.UpdatedAt)
	if project.OrderIndex >= 0 {
		builder = builder.Set("order_index", project.OrderIndex)
	}

	query, args, err := builder.Where(sq.Eq{"id": project.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return requireAffected(result, "project", project.ID)
}
