package domain

import (
	"context"
	"database/sql"
	"strings"
	"time"
	"unicode/utf8"
)

//go:generate mockgen -destination mocks/mock_project_service.go -package mocks github.com/rllL1/portfolio/internal/domain ProjectService
//go:generate mockgen -destination mocks/mock_project_repository.go -package mocks github.com/rllL1/portfolio/internal/domain ProjectRepository

// Project is a portfolio entry shown in the projects grid
type Project struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TechStack   StringList `json:"tech_stack"`
	GithubURL   *string    `json:"github_url"`
	LiveURL     *string    `json:"live_url"`
	ImageURL    *string    `json:"image_url"`
	OrderIndex  int        `json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ScanProject scans a project from the database
func ScanProject(scanner Scanner) (*Project, error) {
	var (
		p                          Project
		github, live, image, descr sql.NullString
	)
	if err := scanner.Scan(
		&p.ID,
		&p.Title,
		&descr,
		&p.TechStack,
		&github,
		&live,
		&image,
		&p.OrderIndex,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Description = descr.String
	p.GithubURL = fromNullString(github)
	p.LiveURL = fromNullString(live)
	p.ImageURL = fromNullString(image)
	if p.TechStack == nil {
		p.TechStack = StringList{}
	}
	return &p, nil
}

// ProjectRequest is used by both projects.create and projects.update
type ProjectRequest struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TechStack   StringList `json:"tech_stack"`
	GithubURL   *string    `json:"github_url"`
	LiveURL     *string    `json:"live_url"`
	ImageURL    *string    `json:"image_url"`
	OrderIndex  *int       `json:"order_index,omitempty"`
}

// Validate returns the project to persist. requireID is set for updates.
func (r *ProjectRequest) Validate(requireID bool) (*Project, error) {
	r.ID = strings.TrimSpace(r.ID)
	if requireID && r.ID == "" {
		return nil, NewValidationError("id is required")
	}

	title := strings.TrimSpace(r.Title)
	if title == "" {
		return nil, NewValidationError("title is required")
	}
	if utf8.RuneCountInString(title) > 255 {
		return nil, NewValidationError("title length must be between 1 and 255")
	}

	if r.OrderIndex != nil && *r.OrderIndex < 0 {
		return nil, NewValidationError("order_index must be zero or greater")
	}

	project := &Project{
		ID:          r.ID,
		Title:       title,
		Description: strings.TrimSpace(r.Description),
		TechStack:   r.TechStack,
		GithubURL:   OptionalString(r.GithubURL),
		LiveURL:     OptionalString(r.LiveURL),
		ImageURL:    OptionalString(r.ImageURL),
	}
	if project.TechStack == nil {
		project.TechStack = StringList{}
	}

	if err := validateOptionalURL("github_url", project.GithubURL); err != nil {
		return nil, err
	}
	if err := validateOptionalURL("live_url", project.LiveURL); err != nil {
		return nil, err
	}
	if err := validateOptionalURL("image_url", project.ImageURL); err != nil {
		return nil, err
	}

	if r.OrderIndex != nil {
		project.OrderIndex = *r.OrderIndex
	} else {
		project.OrderIndex = AppendOrder
	}

	return project, nil
}

// LinkPreview is the Open Graph summary of a project URL
type LinkPreview struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	SiteName    string `json:"site_name,omitempty"`
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]*Project, error)
	CreateProject(ctx context.Context, project *Project) (*Project, error)
	UpdateProject(ctx context.Context, project *Project) (*Project, error)
	DeleteProject(ctx context.Context, id string) error
	ReorderProjects(ctx context.Context, ids []string) error
	PreviewLink(ctx context.Context, rawURL string) (*LinkPreview, error)
}

type ProjectRepository interface {
	List(ctx context.Context) ([]*Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}
